package regexp

// Detect reports whether s contains a match. regexp2 errors, such as an
// exceeded time limit, are returned.
func (r *Regexp) Detect(s string) (bool, error) {
	if r.core != nil {
		return r.core.MatchString(s), nil
	}
	if r.pcre == nil {
		return false, ErrReleased
	}

	return r.pcre.MatchString(s)
}

// Locate returns the byte offsets of the leftmost match in s, or nil.
func (r *Regexp) Locate(s string) ([]int, error) {
	if r.core != nil {
		return r.core.FindStringIndex(s), nil
	}
	if r.pcre == nil {
		return nil, ErrReleased
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, err
	}

	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}, nil
}

// Extract returns the leftmost match in s and whether there was one.
func (r *Regexp) Extract(s string) (string, bool, error) {
	loc, err := r.Locate(s)
	if err != nil || loc == nil {
		return "", false, err
	}

	return s[loc[0]:loc[1]], true, nil
}

// Count returns the number of non-overlapping matches in s.
func (r *Regexp) Count(s string) (int, error) {
	if r.core != nil {
		return len(r.core.FindAllStringIndex(s, -1)), nil
	}
	if r.pcre == nil {
		return 0, ErrReleased
	}

	n := 0
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		n++
		m, err = r.pcre.FindNextMatch(m)
	}
	return n, err
}

// Replace replaces every match in src with repl. repl may reference groups
// with the engine's $ syntax.
func (r *Regexp) Replace(src, repl string) (string, error) {
	if r.core != nil {
		return r.core.ReplaceAllString(src, repl), nil
	}
	if r.pcre == nil {
		return src, ErrReleased
	}

	return r.pcre.Replace(src, repl, -1, -1)
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	matched, err := r.Detect(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	m, _, _ := r.Extract(s)
	return m
}

// FindStringIndex returns a two-element slice with the start and end index of
// the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	loc, _ := r.Locate(s)
	return loc
}

// FindAllStringIndex returns a slice of all successive match indices of the
// Regexp in s.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringIndex(s, n)
	}
	if r.pcre == nil {
		return nil
	}

	matches := make([][]int, 0)
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}

		start, end := runeRangeToByte(s, m.Index, m.Length)
		matches = append(matches, []int{start, end})
		m, err = r.pcre.FindNextMatch(m)
	}

	return matches
}

// FindAllString returns a slice of all successive matches of the Regexp in s.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}

	idx := r.FindAllStringIndex(s, n)
	if idx == nil {
		return nil
	}

	out := make([]string, len(idx))
	for i, loc := range idx {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// ReplaceAllString returns a copy of src, replacing matches of the Regexp with
// repl. On a regexp2 error src is returned unchanged.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	out, err := r.Replace(src, repl)
	if err != nil {
		return src
	}
	return out
}

// Split slices s into substrings separated by the Regexp.
func (r *Regexp) Split(s string, n int) []string {
	if r.core != nil {
		return r.core.Split(s, n)
	}

	if n == 0 || r.pcre == nil {
		return nil
	}

	parts := make([]string, 0)
	last := 0
	count := 0

	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && count+1 >= n {
			break
		}

		start, end := runeRangeToByte(s, m.Index, m.Length)
		parts = append(parts, s[last:start])
		last = end
		count++

		m, err = r.pcre.FindNextMatch(m)
	}

	parts = append(parts, s[last:])
	return parts
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
