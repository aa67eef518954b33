package util

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}

// PtrBool 用于将 bool 转换为 *bool
func PtrBool(b bool) *bool {
	return &b
}
