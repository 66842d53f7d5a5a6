package morph

// MorphOptions specifies optional settings for [Morph].
type MorphOptions struct {
	Corners *CornerOptions
	Match   *MatchOptions
	// NoCorners disables corner tagging. Corners of the inputs are then
	// interpolated like any other point.
	NoCorners bool
}

// Morph prepares an animation from a to b. It tags the corners of both paths,
// matches them with [Match] and returns an [Interpolator] over the result.
func Morph(a, b Path, opts *MorphOptions) (*Interpolator, error) {
	if opts == nil {
		opts = &MorphOptions{}
	}
	if !opts.NoCorners {
		a = TagCorners(a, opts.Corners)
		b = TagCorners(b, opts.Corners)
	}
	ma, mb, err := Match(a, b, opts.Match)
	if err != nil {
		return nil, err
	}
	return NewInterpolator(ma, mb)
}
