package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check that each host is ready for deployments"

	DoctorHealthCheckFmt = "Checking %s in %s...\n"

	DoctorCheckNameTools      = "Tools"
	DoctorCheckNameLayout     = "Layout"
	DoctorCheckNameRepository = "Repository"
	DoctorCheckNameCurrent    = "Current"
	DoctorCheckNameShared     = "Shared"

	DoctorToolFoundFmt         = "Command available: %s"
	DoctorToolMissingFmt       = "Command not found: %s"
	DoctorToolMissingRecommend = "Install the missing command on the host; deployments run it over the configured transport."
	DoctorMoveTSupported       = "mv supports -T"
	DoctorMoveTMissing         = "mv does not support -T"
	DoctorMoveTRecommend       = "Install GNU coreutils; symlinks are swapped with mv -Tf."

	DoctorDirExistsFmt           = "Directory exists: %s"
	DoctorDirMissingFmt          = "Missing directory: %s"
	DoctorDirMissingRecommendFmt = "Create it with: mkdir -p %s"

	DoctorRepositoryOKFmt        = "Bare repository found: %s"
	DoctorRepositoryMissingFmt   = "No bare git repository at %s"
	DoctorRepositoryRecommendFmt = "Mirror the source repository there, for example: git clone --mirror <url> %s"

	DoctorCurrentFmt           = "current points to %s"
	DoctorCurrentMissing       = "current is not set; nothing has been deployed yet"
	DoctorCurrentDanglingFmt   = "current points to %s, which does not exist"
	DoctorCurrentRecommend     = "Deploy a tag or roll back to an installed release."
	DoctorNextLinkLeftover     = "new_current is left over from an interrupted activation"
	DoctorNextLinkRecommend    = "It is replaced by the next activation and can be removed."
	DoctorCurrentReadFailedFmt = "Failed to inspect current: %v"

	DoctorSharedLinkOKFmt      = "Shared link %s -> %s"
	DoctorSharedLinkMissingFmt = "Shared link %s is missing"
	DoctorSharedLinkRecommend  = "Shared links are created on the next deploy."
	DoctorSharedNone           = "No shared files configured."

	DoctorFailureSummary = "Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "All hosts are ready."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       hint: "
	DoctorRecommendationIndent = "             "
)
