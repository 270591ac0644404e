package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// Int32 return a pointer to the input value
func Int32(value int32) *int32 {
	return &value
}

// Uint16 return a pointer to the input value
func Uint16(value uint16) *uint16 {
	return &value
}

// Uint64 return a pointer to the input value
func Uint64(value uint64) *uint64 {
	return &value
}

// Bool return a pointer to the input value
func Bool(value bool) *bool {
	return &value
}
