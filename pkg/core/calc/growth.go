package calc

// Growth is the optional invested-capital growth rate accepted by
// FutureFreeCashFlow. The zero value (NoGrowth) means no rate was supplied,
// in which case the ic argument is taken as the already-computed change in
// invested capital. GrowthAt(0) is a supplied rate of zero, which is not the
// same thing: it makes the capital consumption ic * 0 = 0.
type Growth struct {
	rate float64
	set  bool
}

// NoGrowth leaves the growth rate unset.
var NoGrowth = Growth{}

// GrowthAt supplies an invested-capital growth rate, typically set to the
// risk-free rate.
func GrowthAt(rate float64) Growth {
	return Growth{rate: rate, set: true}
}

// Rate returns the supplied rate and whether one was supplied.
func (g Growth) Rate() (float64, bool) {
	return g.rate, g.set
}
