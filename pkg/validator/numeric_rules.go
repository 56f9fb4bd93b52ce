package validator

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a numeric value is not below min. The comparison
// is strict: a value exactly at the bound passes.
func Min[N Numeric](min N) Validator[N] {
	return Validator[N]{
		code:   CodeMinValue,
		params: Params{MinValue: float64(min)},
		check: func(value N, _ ValueSource) string {
			if value < min {
				return CodeMinValue
			}
			return ""
		},
	}
}

// Max validates that a numeric value is not above max. A value exactly
// at the bound passes.
func Max[N Numeric](max N) Validator[N] {
	return Validator[N]{
		code:   CodeMaxValue,
		params: Params{MaxValue: float64(max)},
		check: func(value N, _ ValueSource) string {
			if value > max {
				return CodeMaxValue
			}
			return ""
		},
	}
}
