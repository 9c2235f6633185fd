package announcement

import "errors"

var ErrAnnouncementNotFound = errors.New("announcement not found")

var ErrInvalidAnnouncement = errors.New("invalid announcement")
