package model

// Quote is the price breakdown of a stay. Every amount is rounded to two decimals
// and TotalAmount is the sum of the other three.
type Quote struct {
	Nights      int
	BaseAmount  float64
	CleaningFee float64
	ServiceFee  float64
	TotalAmount float64
}
