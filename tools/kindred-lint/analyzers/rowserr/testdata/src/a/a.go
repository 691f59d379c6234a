package a

type rowset struct{}

func (r *rowset) Next() bool { return false }
func (r *rowset) Err() error { return nil }
func (r *rowset) scan()      {}

func bad(rows *rowset) {
	for rows.Next() { // want "rows.Next\\(\\) loop without rows.Err\\(\\) check"
		rows.scan()
	}
}

func good(rows *rowset) error {
	for rows.Next() {
		rows.scan()
	}
	return rows.Err()
}

func goodNoLoop(rows *rowset) {
	rows.scan()
}

func badOneOfTwo(a, b *rowset) error {
	for a.Next() {
		a.scan()
	}
	for b.Next() { // want "b.Next\\(\\) loop without b.Err\\(\\) check"
		b.scan()
	}
	return a.Err()
}
