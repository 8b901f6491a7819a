package pick

// MapOption configures a Map during creation.
//
// Example:
//
//	// Full 15-bit code space
//	m := pick.NewMap[*mesh.FaceGroup, *mesh.Object]()
//
//	// Reserve only the first 1024 codes
//	m := pick.NewMap[*mesh.FaceGroup, *mesh.Object](pick.WithCapacity(1024))
type MapOption func(*mapOptions)

type mapOptions struct {
	capacity int
}

func defaultMapOptions() mapOptions {
	return mapOptions{capacity: int(MaxCode)}
}

// WithCapacity limits the number of codes a Map hands out per session.
// Values outside [1, MaxCode] are clamped.
func WithCapacity(n int) MapOption {
	return func(o *mapOptions) {
		o.capacity = min(max(n, 1), int(MaxCode))
	}
}

// PickerOption configures a Picker during creation.
type PickerOption func(*pickerOptions)

type pickerOptions struct {
	scale float64
}

func defaultPickerOptions() pickerOptions {
	return pickerOptions{scale: 1}
}

// WithScale sets the device scale: the number of pick buffer pixels per
// logical pointer unit. Use 2 for a pick buffer rendered at the physical
// resolution of a HiDPI window. Non-positive values are ignored.
func WithScale(s float64) PickerOption {
	return func(o *pickerOptions) {
		if s > 0 {
			o.scale = s
		}
	}
}
