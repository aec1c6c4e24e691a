package sizing

// Reference points approximating the 5th–95th percentiles of the male
// population, used for anthropometric normalcy scoring and rationale notes.
var (
	heightReference = []float64{165, 168, 173, 178, 183, 188, 193}
	weightReference = []float64{60, 65, 72, 80, 90, 105, 120}
	bmiReference    = []float64{20, 21, 23, 25, 28, 32, 35}
)

// CalculatePercentiles positions the measurements against the reference
// points with linear interpolation between adjacent points.
func CalculatePercentiles(m Measurements) Percentiles {
	return Percentiles{
		Height: percentileOf(m.HeightCM, heightReference),
		Weight: percentileOf(m.WeightKG, weightReference),
		BMI:    percentileOf(m.BMI, bmiReference),
	}
}

func percentileOf(value float64, points []float64) float64 {
	if len(points) < 2 {
		return 50
	}
	if value <= points[0] {
		return 0
	}
	if value >= points[len(points)-1] {
		return 100
	}

	span := 100 / float64(len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		if points[i] <= value && value <= points[i+1] {
			position := (value - points[i]) / (points[i+1] - points[i])
			return float64(i)*span + position*span
		}
	}
	return 50
}
