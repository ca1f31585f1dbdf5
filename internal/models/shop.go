package models

type Shop struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	OwnerID string `json:"owner_id"`
	City    string `json:"city"`
}

type SalesPerson struct {
	ID           string `json:"id"`
	EmpID        string `json:"emp_id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
	ShopID       string `json:"shop_id"`
}
