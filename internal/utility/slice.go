package utility

// Contains báo phần tử item có xuất hiện trong slice hay không.
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
