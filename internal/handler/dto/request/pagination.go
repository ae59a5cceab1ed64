package request

type LimitQuery struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1"`
}
