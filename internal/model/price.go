package model

// PriceSnapshot is one recorded token price observation.
type PriceSnapshot struct {
	Chain   string  `json:"chain"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
	Time    int64   `json:"time"`
}
