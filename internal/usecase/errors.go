package usecase

import "errors"

var errNoSource = errors.New("no article source configured")
