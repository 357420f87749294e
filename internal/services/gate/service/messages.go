package service

// User-facing denial messages. NotFound always uses the same generic text so
// callers cannot distinguish "does not exist" from "exists but hidden"
const (
	msgProtocolDisabled = "Git access over %s is not allowed"
	msgPullOverHTTP     = "Pulling over HTTP is not allowed."
	msgPushOverHTTP     = "Pushing over HTTP is not allowed."
	msgCommandUnknown   = "The command you're trying to execute is not allowed."

	msgNotFound = "The project you were looking for could not be found."
	msgBlocked  = "Your account has been blocked."

	msgDownloadDenied  = "You are not allowed to download code from this project."
	msgUploadDenied    = "You are not allowed to upload code for this project."
	msgDeployKeyDenied = "This deploy key does not have write access to this project."

	msgProtectedPush      = "You are not allowed to push code to protected branches on this project."
	msgProtectedDelete    = "You are not allowed to delete protected branches from this project."
	msgProtectedTagPush   = "You are not allowed to create this tag as it is protected."
	msgProtectedTagDelete = "You are not allowed to delete this tag as it is protected."
)
