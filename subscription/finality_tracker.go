package subscription

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/celer-network/cosmos-sidecar/client"
	"github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/types"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/multierr"
)

// Resolver represents any object that resolves the outcome of a cosmos
// transaction found in a finalized block.
type Resolver interface {
	ResolveResult(
		ctx context.Context,
		header *models.Header,
		extrinsicIndex uint32,
		rawTx []byte,
	) (*models.ResultRecord, error)
}

// FinalityTracker polls the native chain for finalized blocks and hands every
// cosmos transaction it finds to the Resolver. Progress is checkpointed in the
// store so a restart continues after the last processed block.
type FinalityTracker struct {
	client   client.Client
	decoder  client.ExtrinsicDecoder
	resolver Resolver
	store    store.Store
	config   *types.Config
	logger   types.Logger
	sleeper  Sleeper

	mutex   sync.Mutex
	started bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewFinalityTracker instantiates a new FinalityTracker. Can be passed in an
// optional sleeper object that will dictate how long it waits after a failed
// poll.
func NewFinalityTracker(
	nativeClient client.Client,
	decoder client.ExtrinsicDecoder,
	resolver Resolver,
	store store.Store,
	config *types.Config,
	sleepers ...Sleeper,
) *FinalityTracker {
	var sleeper Sleeper
	if len(sleepers) > 0 {
		sleeper = sleepers[0]
	} else {
		sleeper = NewBackoffSleeper(config.BlockTime)
	}
	return &FinalityTracker{
		client:   nativeClient,
		decoder:  decoder,
		resolver: resolver,
		store:    store,
		config:   config,
		logger:   config.Logger,
		sleeper:  sleeper,
	}
}

// Start begins polling in a new goroutine.
func (ft *FinalityTracker) Start() error {
	ft.mutex.Lock()
	defer ft.mutex.Unlock()

	if ft.started {
		return errors.New("finality tracker has already started")
	}
	head, err := ft.store.LastHead()
	if err != nil {
		return errors.Wrap(err, "could not load last processed head")
	}
	if head != nil {
		ft.logger.Debugw("Resuming from last processed head", "number", head.Number, "hash", head.Hash)
	}

	ft.done = make(chan struct{})
	ft.wg.Add(1)
	go ft.run()

	ft.started = true
	return nil
}

// Stop ends polling and waits for an in-flight poll to return.
func (ft *FinalityTracker) Stop() error {
	ft.mutex.Lock()
	if !ft.started {
		ft.mutex.Unlock()
		return errors.New("finality tracker is not running")
	}
	close(ft.done)
	ft.started = false
	ft.mutex.Unlock()

	ft.wg.Wait()
	ft.logger.Infow("Finality tracker stopped")
	return nil
}

// LastHead returns the last block whose transactions were processed, or nil.
func (ft *FinalityTracker) LastHead() (*models.Header, error) {
	return ft.store.LastHead()
}

func (ft *FinalityTracker) run() {
	defer ft.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-ft.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		var wait time.Duration
		if err := ft.Poll(ctx); err != nil {
			wait = ft.sleeper.After()
			ft.logger.Warnw("Finality tracker poll failed", "err", err, "retryIn", wait)
		} else {
			ft.sleeper.Reset()
			wait = pollInterval(ft.config.BlockTime)
		}

		select {
		case <-ft.done:
			return
		case <-time.After(wait):
		}
	}
}

// Poll processes every block between the last checkpoint and the current
// finalized head, at most MaxBlocksPerPoll of them. Without a checkpoint
// only the finalized head itself is processed.
//
// Node and store errors, including those hit while resolving a transaction,
// abort the poll without advancing past the failing block. Transactions whose
// block data cannot be decoded or violates the event protocol are logged and
// do not hold back progress.
func (ft *FinalityTracker) Poll(ctx context.Context) error {
	finalized, err := ft.client.FinalizedHead(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch finalized head")
	}
	last, err := ft.store.LastHead()
	if err != nil {
		return errors.Wrap(err, "could not load last processed head")
	}

	from := finalized.Number
	if last != nil {
		if last.Number >= finalized.Number {
			return nil
		}
		from = last.Number + 1
	}
	to := finalized.Number
	pollID := uuid.NewV4().String()
	if limit := ft.config.MaxBlocksPerPoll; limit > 0 && to-from+1 > limit {
		to = from + limit - 1
	}

	for number := from; number <= to; number++ {
		header := finalized
		if number != finalized.Number {
			header, err = ft.client.HeaderByNumber(ctx, number)
			if err != nil {
				return errors.Wrapf(err, "could not fetch header %d", number)
			}
		}
		extrinsics, err := ft.client.BlockExtrinsics(ctx, header.Hash)
		if err != nil {
			return errors.Wrapf(err, "could not fetch extrinsics of block %d", number)
		}
		skipped, err := ft.resolveBlock(ctx, header, extrinsics)
		if skipped != nil {
			ft.logger.Errorw("Could not resolve every cosmos transaction in block",
				"pollID", pollID,
				"number", header.Number,
				"hash", header.Hash,
				"failures", len(multierr.Errors(skipped)),
				"err", skipped,
			)
		}
		if err != nil {
			return errors.Wrapf(err, "could not resolve block %d", number)
		}
		if err := ft.store.InsertHead(header); err != nil {
			return errors.Wrapf(err, "could not save head %d", number)
		}
	}
	ft.logger.Debugw("Finality tracker poll done", "pollID", pollID, "from", from, "to", to, "finalized", finalized.Number)
	return nil
}

// ProcessBlock resolves every cosmos transaction in the given block. The
// returned error aggregates every per-transaction failure.
func (ft *FinalityTracker) ProcessBlock(ctx context.Context, header *models.Header) error {
	extrinsics, err := ft.client.BlockExtrinsics(ctx, header.Hash)
	if err != nil {
		return errors.Wrapf(err, "could not fetch extrinsics of block %d", header.Number)
	}
	skipped, err := ft.resolveBlock(ctx, header, extrinsics)
	return multierr.Append(skipped, err)
}

// resolveBlock returns the per-transaction data failures it skipped over and,
// separately, the first failure that must be retried. On a retryable failure
// the rest of the block is not processed.
func (ft *FinalityTracker) resolveBlock(ctx context.Context, header *models.Header, extrinsics []string) (skipped error, err error) {
	resolved := 0
	defer func() {
		ft.logger.Debugw("Processed finalized block",
			"number", header.Number,
			"extrinsics", len(extrinsics),
			"resolved", resolved,
			"skipped", len(multierr.Errors(skipped)),
		)
	}()

	for i, encoded := range extrinsics {
		field := fmt.Sprintf("extrinsics[%d]", i)
		extrinsic, decodeErr := hexutil.Decode(encoded)
		if decodeErr != nil {
			skipped = multierr.Append(skipped, types.NewDecodeError(field, decodeErr))
			continue
		}
		rawTx, ok, decodeErr := ft.decoder.CosmosTx(extrinsic)
		if decodeErr != nil {
			skipped = multierr.Append(skipped, types.NewDecodeError(field, decodeErr))
			continue
		}
		if !ok {
			continue
		}
		if _, resolveErr := ft.resolver.ResolveResult(ctx, header, uint32(i), rawTx); resolveErr != nil {
			if !isSkippable(resolveErr) {
				return skipped, resolveErr
			}
			skipped = multierr.Append(skipped, resolveErr)
			continue
		}
		resolved++
	}
	return skipped, nil
}

// isSkippable reports whether a resolution failure comes from the block data
// itself, so retrying the block would fail the same way.
func isSkippable(err error) bool {
	return types.IsDecodeError(err) || types.IsProtocolInconsistencyError(err)
}
