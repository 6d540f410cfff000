package genotype

// Genotype is the fixed-width decimal encoding of a normalized phenotype:
// d digits per variable, most significant first, every digit in [0,9].
type Genotype []uint8

// New allocates a genotype for n variables at the given digit resolution.
func New(n, digits int) Genotype {
	return make(Genotype, n*digits)
}

// Clone returns an independent copy of gn.
func Clone(gn Genotype) Genotype {
	out := make(Genotype, len(gn))
	copy(out, gn)
	return out
}

// Scale returns 10^digits as an integer.
func Scale(digits int) int {
	s := 1
	for i := 0; i < digits; i++ {
		s *= 10
	}
	return s
}

// Encode writes the digit representation of phenotype into gn. Each component
// maps to floor(value*10^digits); values at exactly 1 clamp to the largest
// representable digit string so decoded values stay inside [0,1).
func Encode(phenotype []float64, digits int, gn Genotype) {
	scale := Scale(digits)
	for i, v := range phenotype {
		ip := int(v * float64(scale))
		if ip > scale-1 {
			ip = scale - 1
		}
		if ip < 0 {
			ip = 0
		}
		for j := digits - 1; j >= 0; j-- {
			gn[i*digits+j] = uint8(ip % 10)
			ip /= 10
		}
	}
}

// Decode reconstructs the normalized phenotype from gn. The inverse of
// Encode up to the quantization step 10^-digits.
func Decode(gn Genotype, digits int, phenotype []float64) {
	scale := float64(Scale(digits))
	for i := range phenotype {
		ip := 0
		for j := 0; j < digits; j++ {
			ip = ip*10 + int(gn[i*digits+j])
		}
		phenotype[i] = float64(ip) / scale
	}
}
