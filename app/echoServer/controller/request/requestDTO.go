package request

type CreateRequestReq struct {
	ResourceID int64 `json:"resource_id" validate:"required,gt=0"`
}
