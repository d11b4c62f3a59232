package motion

import "unsafe"

// samplePtr returns the address of data[index], used only to inspect
// pointer alignment for SAD dispatch; the returned value is never
// dereferenced through unsafe.
func samplePtr[T Sample](data []T, index int) uintptr {
	if len(data) == 0 {
		return 0
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return uintptr(unsafe.Pointer(&data[0])) + uintptr(index)*size
}
