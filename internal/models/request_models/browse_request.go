package request_models

type BrowseQuery struct {
	Category string   `form:"category"`
	Search   string   `form:"q"`
	Tag      string   `form:"tag"`
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	Page     int      `form:"page,default=1"`
	PageSize int      `form:"pageSize,default=30"`
}
