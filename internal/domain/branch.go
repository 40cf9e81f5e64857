package domain

type Branch struct {
	ID      int32  `json:"branch_id"`
	Name    string `json:"branch_name"`
	Address string `json:"branch_addr"`
	City    string `json:"branch_city"`
	Phone   *int32 `json:"branch_phone,omitempty"`
}
