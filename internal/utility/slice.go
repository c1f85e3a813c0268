package utility

// Contains 슬라이스에 항목이 있는지 확인한다
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
