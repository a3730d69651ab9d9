package indexbuilder

import "errors"

// ErrEmptyRowStore indicates Build was called against a row store with no
// rows; there is nothing to index.
var ErrEmptyRowStore = errors.New("indexbuilder: row store is empty")
