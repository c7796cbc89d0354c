package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrSource = "source"
	AttrKind   = "kind"
	AttrResult = "result"
	AttrReason = "reason"
	AttrLocale = "locale"
)

// Name generation kinds and results.
const (
	KindMarket  = "market"
	KindOutcome = "outcome"
	ResultOK    = "ok"
)
