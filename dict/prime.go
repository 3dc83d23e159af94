package dict

import "slices"

// primes are the capacities a table moves through as it grows, roughly
// 1.2x to 1.5x apart.
var primes = [...]int{3, 7, 11, 17, 23, 29, 37, 47, 59, 71, 89, 107, 131,
	163, 197, 239, 293, 353, 431, 521, 631, 761, 919, 1103, 1327, 1597, 1931, 2333, 2801,
	3371, 4049, 4861, 5839, 7013, 8419, 10103, 12143, 14591, 17321, 21269, 25253, 31393,
	39769, 49157, 62851, 90523, 108631, 130363, 156437, 187751, 225307, 270371, 324449,
	389357, 467237, 560689, 672827, 807403, 946037, 1395263, 1572869, 2009191, 2411033,
	2893249, 3471899, 4166287, 4999559, 5999471, 7199369}

// ClosestPrime returns the smallest cataloged prime >= n. Past the end of the
// catalog it returns the next odd prime >= n.
func ClosestPrime(n int) int {
	if n > primes[len(primes)-1] {
		for i := n | 1; ; i += 2 {
			if IsPrime(i) {
				return i
			}
		}
	}
	i, _ := slices.BinarySearch(primes[:], n)
	return primes[i]
}

// IsPrime reports whether n is prime, by trial division.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n&1 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
