// Package access decides whether an actor may create or change content.
//
// Decisions never touch storage. Denials carry the path the transport layer
// should redirect to: the login page (with a return path) for anonymous
// actors, or the read-only view for authenticated actors that do not own
// the resource.
package access

import (
	"fmt"
	"net/url"

	"github.com/gofrs/uuid"
)

const LoginPath = "/auth/login/"

// Actor is the identity a request acts as. The zero value is anonymous.
type Actor struct {
	ID       uuid.UUID
	Username string
}

// Anonymous is the unauthenticated actor.
var Anonymous = Actor{}

func (a Actor) Authenticated() bool {
	return a.ID != uuid.Nil
}

type Outcome int

const (
	Allowed Outcome = iota
	DenyRedirect
	DenyLogin
)

func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case DenyRedirect:
		return "deny_redirect"
	case DenyLogin:
		return "deny_login"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Decision is the gate's answer. Target is empty when Allowed.
type Decision struct {
	Outcome Outcome
	Target  string
}

func (d Decision) Allowed() bool { return d.Outcome == Allowed }

func allow() Decision { return Decision{Outcome: Allowed} }

// LoginRedirect builds the login URL that returns to returnPath.
func LoginRedirect(returnPath string) string {
	if returnPath == "" {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(returnPath)
}

func PostDetailPath(postID uint) string  { return fmt.Sprintf("/posts/%d/", postID) }
func PostEditPath(postID uint) string    { return fmt.Sprintf("/posts/%d/edit/", postID) }
func PostCommentPath(postID uint) string { return fmt.Sprintf("/posts/%d/comment/", postID) }
func ProfilePath(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}
func FollowPath(username string) string   { return ProfilePath(username) + "follow/" }
func UnfollowPath(username string) string { return ProfilePath(username) + "unfollow/" }

const (
	CreatePostPath  = "/create/"
	FollowIndexPath = "/follow/"
)

func CanCreatePost(actor Actor) bool { return actor.Authenticated() }
func CanComment(actor Actor) bool    { return actor.Authenticated() }
func CanFollow(actor Actor) bool     { return actor.Authenticated() }

// CanEditPost reports whether actor owns a post written by authorID.
func CanEditPost(actor Actor, authorID uuid.UUID) bool {
	return actor.Authenticated() && actor.ID == authorID
}

// RequireAuth is the decision for create, comment, follow and the following feed.
func RequireAuth(actor Actor, returnPath string) Decision {
	if !actor.Authenticated() {
		return Decision{Outcome: DenyLogin, Target: LoginRedirect(returnPath)}
	}
	return allow()
}

// EditPost checks login first, then ownership. A non-owner is sent to the
// post's detail view rather than refused outright.
func EditPost(actor Actor, postID uint, authorID uuid.UUID) Decision {
	if !actor.Authenticated() {
		return Decision{Outcome: DenyLogin, Target: LoginRedirect(PostEditPath(postID))}
	}
	if !CanEditPost(actor, authorID) {
		return Decision{Outcome: DenyRedirect, Target: PostDetailPath(postID)}
	}
	return allow()
}
