// Package domain defines the access gate types and collaborator ports
package domain

import (
	"gitgate/internal/core/gitref"
)

// Protocol is the wire protocol a Git operation arrives over
type Protocol string

const (
	// ProtocolSSH is Git over SSH
	ProtocolSSH Protocol = "ssh"
	// ProtocolHTTP is Git over the smart HTTP protocol
	ProtocolHTTP Protocol = "http"
)

// Command is the Git wire-protocol verb being requested
type Command string

const (
	// CommandUploadPack serves fetches and pulls
	CommandUploadPack Command = "git-upload-pack"
	// CommandReceivePack serves pushes
	CommandReceivePack Command = "git-receive-pack"
)

// Visibility is a project's visibility level
type Visibility uint8

const (
	// VisibilityPrivate is members only
	VisibilityPrivate Visibility = 0
	// VisibilityInternal is any authenticated account
	VisibilityInternal Visibility = 10
	// VisibilityPublic is everyone
	VisibilityPublic Visibility = 20
)

// Project is the snapshot of project state the gate decides over
type Project struct {
	ID                int64
	Path              string // full namespace path, e.g. "group/app"
	Visibility        Visibility
	RepositoryEnabled bool
}

// Ability is one authentication-scope capability granted to the session or
// token the actor presented. The scope limits which project permissions may
// even be asked, independent of the actor's role on the project
type Ability string

const (
	// AbilityReadProject allows asking whether the project is visible
	AbilityReadProject Ability = "read_project"
	// AbilityDownloadCode allows asking whether code may be fetched
	AbilityDownloadCode Ability = "download_code"
	// AbilityBuildDownloadCode is the CI-scoped download capability
	AbilityBuildDownloadCode Ability = "build_download_code"
	// AbilityPushCode allows asking whether code may be pushed
	AbilityPushCode Ability = "push_code"
)

// AbilitySet is the ability scope attached to one check
type AbilitySet []Ability

// Has reports whether the scope includes a
func (s AbilitySet) Has(a Ability) bool {
	for _, x := range s {
		if x == a {
			return true
		}
	}
	return false
}

// CanDownloadCode reports whether the scope includes either download ability
func (s AbilitySet) CanDownloadCode() bool {
	return s.Has(AbilityDownloadCode) || s.Has(AbilityBuildDownloadCode)
}

// CheckInput is one access check request
type CheckInput struct {
	Actor    Actor
	Path     string // requested repository path, may be stale
	Protocol Protocol
	Command  Command
	Changes  []gitref.Change // receive-pack only
	Scope    AbilitySet

	// RedirectedFrom is set by front-ends that already followed a rename;
	// when empty the locator's own redirect result is used instead
	RedirectedFrom string
}
