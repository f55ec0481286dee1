package viritys

// DegreeIntervalIter lazily yields the interval accumulated from the root
// to each successive degree, one composition per Next call. It never ends
// on its own; it halts only when a composition fails, after which Err
// reports the failure.
//
//	iter := pattern.DegreeIntervalIter()
//	for iter.Next() {
//		use(iter.Degree(), iter.Interval())
//	}
//	if err := iter.Err(); err != nil { ... }
type DegreeIntervalIter struct {
	steps      []Interval
	nextDegree int
	acc        Interval
	degree     int
	interval   Interval
	err        error
}

// DegreeIntervalIter returns a lazy iterator over the pattern's cumulative
// degree intervals, starting with the identity at degree 0.
func (p ScalePattern) DegreeIntervalIter() *DegreeIntervalIter {
	return &DegreeIntervalIter{steps: p.steps}
}

// Next advances to the following degree, reporting false when a
// composition failed.
func (it *DegreeIntervalIter) Next() bool {
	if it.err != nil {
		return false
	}
	if it.nextDegree == 0 {
		it.degree, it.interval, it.acc = 0, Identity(), Identity()
		it.nextDegree = 1
		return true
	}
	if len(it.steps) == 0 {
		it.degree = it.nextDegree
		it.interval = Identity()
		it.nextDegree++
		return true
	}
	step := it.steps[(it.nextDegree-1)%len(it.steps)]
	next := step
	if it.nextDegree > 1 {
		var err error
		if next, err = it.acc.Compose(step); err != nil {
			it.err = err
			return false
		}
	}
	it.acc = next
	it.degree = it.nextDegree
	it.interval = next
	it.nextDegree++
	return true
}

// Degree returns the degree of the current item.
func (it *DegreeIntervalIter) Degree() int { return it.degree }

// Interval returns the cumulative interval of the current item.
func (it *DegreeIntervalIter) Interval() Interval { return it.interval }

// Err returns the composition failure that halted the iterator, if any.
func (it *DegreeIntervalIter) Err() error { return it.err }

// ScaleDegree is one item of a scale traversal: the degree number, the
// interval accumulated from the root and the resolved pitch.
type ScaleDegree struct {
	Degree   int
	Interval Interval
	Pitch    Pitch
}

// ScaleDegreeIter lazily traverses the degrees of a scale, resolving one
// pitch and composing one interval per Next call. Like DegreeIntervalIter
// it is unbounded and halts only on the first failure.
type ScaleDegreeIter struct {
	scale      Scale
	registry   *TuningRegistry
	nextDegree int
	pitch      Pitch
	acc        Interval
	current    ScaleDegree
	err        error
}

// Degrees returns an unbounded lazy iterator over the scale's degrees.
// Callers bound the traversal by ceasing to pull, or use DegreesUpTo.
func (s Scale) Degrees(registry *TuningRegistry) *ScaleDegreeIter {
	return &ScaleDegreeIter{scale: s, registry: registry, pitch: s.root}
}

// Next advances to the following degree, reporting false when an interval
// composition or pitch resolution failed.
func (it *ScaleDegreeIter) Next() bool {
	if it.err != nil {
		return false
	}
	if it.nextDegree == 0 {
		it.current = ScaleDegree{Degree: 0, Interval: Identity(), Pitch: it.scale.root}
		it.acc = Identity()
		it.nextDegree = 1
		return true
	}
	steps := it.scale.pattern.steps
	if len(steps) == 0 {
		it.current = ScaleDegree{Degree: it.nextDegree, Interval: Identity(), Pitch: it.scale.root}
		it.nextDegree++
		return true
	}
	step := steps[(it.nextDegree-1)%len(steps)]
	acc := step
	if it.nextDegree > 1 {
		var err error
		if acc, err = it.acc.Compose(step); err != nil {
			it.err = err
			return false
		}
	}
	pitch, err := step.ApplyTo(it.pitch, it.registry)
	if err != nil {
		it.err = err
		return false
	}
	it.acc, it.pitch = acc, pitch
	it.current = ScaleDegree{Degree: it.nextDegree, Interval: acc, Pitch: pitch}
	it.nextDegree++
	return true
}

// Value returns the current traversal item.
func (it *ScaleDegreeIter) Value() ScaleDegree { return it.current }

// Err returns the failure that halted the iterator, if any.
func (it *ScaleDegreeIter) Err() error { return it.err }

// BoundedScaleDegreeIter wraps ScaleDegreeIter with an exact remaining
// count, ending after the highest requested degree.
type BoundedScaleDegreeIter struct {
	inner     ScaleDegreeIter
	remaining int
}

// DegreesUpTo returns a bounded iterator over degrees 0 through highest
// inclusive.
func (s Scale) DegreesUpTo(highest int, registry *TuningRegistry) *BoundedScaleDegreeIter {
	return &BoundedScaleDegreeIter{
		inner:     ScaleDegreeIter{scale: s, registry: registry, pitch: s.root},
		remaining: highest + 1,
	}
}

// Next advances the traversal, reporting false when the bound is reached
// or the underlying iteration failed.
func (it *BoundedScaleDegreeIter) Next() bool {
	if it.remaining <= 0 {
		return false
	}
	if !it.inner.Next() {
		it.remaining = 0
		return false
	}
	it.remaining--
	return true
}

// Remaining returns the exact number of items still to be yielded.
func (it *BoundedScaleDegreeIter) Remaining() int {
	if it.remaining < 0 {
		return 0
	}
	return it.remaining
}

// Value returns the current traversal item.
func (it *BoundedScaleDegreeIter) Value() ScaleDegree { return it.inner.Value() }

// Err returns the failure that halted the iterator, if any.
func (it *BoundedScaleDegreeIter) Err() error { return it.inner.Err() }
