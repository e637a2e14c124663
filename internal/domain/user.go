package domain

// User representa um cliente identificado pelo mobile_id (dim_users)
type User struct {
	MobileID string `json:"mobile_id"`
	Notes    string `json:"notes"`
}
