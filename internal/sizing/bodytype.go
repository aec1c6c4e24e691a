package sizing

// ClassifyBodyType maps BMI and the kg-per-metre height-weight ratio to a
// body-type label. First match wins; the order is load-bearing. Every caller
// that needs a body type goes through this one function.
func ClassifyBodyType(bmi, ratio float64) BodyType {
	switch {
	case bmi < 18.5:
		return BodySlim
	case bmi > 30:
		return BodyBroad
	case ratio > 1.1:
		return BodyAthletic
	case ratio < 0.85:
		return BodySlender
	default:
		return BodyRegular
	}
}
