package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseNotPublished  = errors.New("course not published")
	ErrCourseCompleted     = errors.New("course already completed")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotJoinable  = errors.New("session is not accepting participants")
	ErrSessionNotActive    = errors.New("session has no active question")
	ErrAlreadyAnswered     = errors.New("question already answered")
	ErrDuelNotFound        = errors.New("duel not found")
	ErrDuelNotPending      = errors.New("duel is not pending")
	ErrDuelNotActive       = errors.New("duel is not active")
	ErrDuelNotParticipant  = errors.New("not a participant of this duel")
	ErrInsufficientBananes = errors.New("not enough bananes")
	ErrClanNotFound        = errors.New("clan not found")
	ErrClanNameTaken       = errors.New("clan name already taken")
	ErrAlreadyClanMember   = errors.New("already a member of this clan")
	ErrNotClanMember       = errors.New("not a member of this clan")
)
