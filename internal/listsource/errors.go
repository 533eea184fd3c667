package listsource

import "errors"

// ErrEmptySelectValues is returned when chars, values and filepath are all
// absent, or their combined resolved list is empty.
var ErrEmptySelectValues = errors.New("listsource: combined selection set is empty")
