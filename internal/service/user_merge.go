package service

import (
	"dario.cat/mergo"

	"github.com/gifcamp/gifcamp/models"
)

// mergeUsers overlays the backend's account record on top of the locally
// known user. Backend fields win where set, but the OAuth provider owns
// the picture and login method, so local non-empty values for those two
// survive the merge.
func mergeUsers(local models.User, remote models.User) models.User {
	merged := local
	if err := mergo.Merge(&merged, remote, mergo.WithOverride); err != nil {
		// mergo only fails on non-struct input, which cannot happen here.
		return local
	}

	if local.Picture != "" {
		merged.Picture = local.Picture
	}
	if local.Method != "" {
		merged.Method = local.Method
	}

	return merged
}
