package domain

type InsightKind string

const (
	InsightCategory   InsightKind = "categoria"
	InsightChannel    InsightKind = "canal"
	InsightRegion     InsightKind = "regiao"
	InsightAudience   InsightKind = "publico"
	InsightSeasonal   InsightKind = "sazonalidade"
	InsightRecurrence InsightKind = "recorrencia"
	InsightTicket     InsightKind = "ticket"
	InsightNoData     InsightKind = "sem_dados"
)

type Insight struct {
	Kind    InsightKind `json:"tipo"`
	Message string      `json:"mensagem"`
}
