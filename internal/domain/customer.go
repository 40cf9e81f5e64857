package domain

type Customer struct {
	DriverLicense string `json:"dlicense"`
	Cellphone     string `json:"cellphone"`
	Name          string `json:"name"`
	Address       string `json:"address"`
}
