package apimodels

type Response struct {
	Status  string      `json:"status"`            //resultado de la operación fail/success
	Message string      `json:"message,omitempty"` //mensaje de error
	Data    interface{} `json:"data,omitempty"`    //datos de la respuesta
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //total de registros según el filtro
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: NewResponse(data),
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // registros por página
	Page  int `json:"page"`  // página (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	return page, limit
}
