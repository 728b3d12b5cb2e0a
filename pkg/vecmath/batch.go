package vecmath

// Array variants. Each applies the scalar operation elementwise over the
// shortest of its slices and returns the number of elements written.

func ZeroAll(out []Vector3) {
	clear(out)
}

func ZeroAll4(out []Vector4) {
	clear(out)
}

func AddAll(a, b, out []Vector3) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Add(b[i])
	}
	return n
}

func SubAll(a, b, out []Vector3) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Sub(b[i])
	}
	return n
}

// MulAll scales a[i] by s[i].
func MulAll(a []Vector3, s []float32, out []Vector3) int {
	n := min(len(a), len(s), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Mul(s[i])
	}
	return n
}

func ScaleAll(a, b, out []Vector3) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Scale(b[i])
	}
	return n
}

func CrossAll(a, b, out []Vector3) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Cross(b[i])
	}
	return n
}

func DotAll(a, b []Vector3, out []float32) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Dot(b[i])
	}
	return n
}

// TransformPoints writes m.MulPoint(in[i]) to out[i].
func TransformPoints(m Matrix4x4, in, out []Vector3) int {
	n := min(len(in), len(out))
	for i := 0; i < n; i++ {
		out[i] = m.MulPoint(in[i])
	}
	return n
}

func AddAll4(a, b, out []Vector4) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Add(b[i])
	}
	return n
}

func SubAll4(a, b, out []Vector4) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Sub(b[i])
	}
	return n
}

func MulAll4(a []Vector4, s []float32, out []Vector4) int {
	n := min(len(a), len(s), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Mul(s[i])
	}
	return n
}

func ScaleAll4(a, b, out []Vector4) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Scale(b[i])
	}
	return n
}

func DotAll4(a, b []Vector4, out []float32) int {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i].Dot(b[i])
	}
	return n
}
