package service

import "errors"

var (
	ErrArtistNotFound   = errors.New("artist not found")
	ErrArtistExists     = errors.New("artist already exists")
	ErrTemplateNotFound = errors.New("template not found")
	ErrNotEnoughArtists = errors.New("at least two artists are required")
	ErrSelfCritique     = errors.New("an artist cannot critique itself")
	ErrNoCreations      = errors.New("artist has no creations")
	ErrUnknownSkill     = errors.New("unknown skill")
	ErrInvalidPairCount = errors.New("critique count must not be negative")
)
