package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json is the encoder used by every handler in this package.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
