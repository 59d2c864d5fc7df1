package app

import (
	"github.com/Earnest-Minds/option-remove-app/internal/appcontext"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
