package utils

import "strconv"

// FormatEuros renders a whole-euro price the pt-PT way: thousands separated
// by "." with a trailing euro sign, e.g. 15000 -> "15.000 €".
func FormatEuros(amount int) string {
	return groupThousands(amount) + " €"
}

// FormatKilometers renders a mileage value, "N/A" when unknown.
func FormatKilometers(km *int) string {
	if km == nil {
		return "N/A"
	}
	return groupThousands(*km) + " km"
}

func groupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return sign + string(out)
}
