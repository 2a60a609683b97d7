package dtos

type HolidayResponse struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type YearParams struct {
	Year int `validate:"min=1,max=9999"`
}

type YearMonthParams struct {
	Year  int `validate:"min=1,max=9999"`
	Month int `validate:"min=1,max=12"`
}
