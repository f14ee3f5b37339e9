package memory

import (
	"sync"

	"github.com/aryanpyx/finsight/internal/domain/analysis"
	"github.com/aryanpyx/finsight/internal/domain/files"
	"github.com/aryanpyx/finsight/internal/domain/proposal"
	"github.com/aryanpyx/finsight/internal/domain/users"
)

// Store is the process-lifetime in-memory repository: four independent
// collections keyed by generated identifiers, no foreign-key
// enforcement, nothing survives a restart.
//
// Go maps are not safe under parallel mutation, so one RWMutex guards
// all collections. That is the only concurrency control: two
// overlapping analysis runs still double-create results.
type Store struct {
	mu sync.RWMutex

	files     map[files.FileID]*files.UploadedFile
	fileOrder []files.FileID

	results     map[analysis.ResultID]*analysis.Result
	resultOrder []analysis.ResultID

	proposals     map[proposal.ProposalID]*proposal.Proposal
	proposalOrder []proposal.ProposalID

	users     map[users.UserID]*users.User
	userOrder []users.UserID
}

func NewStore() *Store {
	return &Store{
		files:     make(map[files.FileID]*files.UploadedFile),
		results:   make(map[analysis.ResultID]*analysis.Result),
		proposals: make(map[proposal.ProposalID]*proposal.Proposal),
		users:     make(map[users.UserID]*users.User),
	}
}
