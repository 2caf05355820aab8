package usecases

import (
	"context"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/errors"
	"linkdeck/internal/shared/logger"
)

// ErrMsgDisconnectFailed is the only failure detail exposed to callers.
const ErrMsgDisconnectFailed = "error deleting your account"

// DisconnectAccountUseCase removes a linked account row and its stored media.
// The row goes first; if the media cleanup then fails the objects are orphaned
// and logged rather than re-inserting the row.
type DisconnectAccountUseCase struct {
	accountRepo social.InstagramAccountRepository
	channelRepo social.YoutubeChannelRepository
	mediaStore  MediaStore
	viewCache   ViewCache
	logger      logger.Interface
}

func NewDisconnectAccountUseCase(
	accountRepo social.InstagramAccountRepository,
	channelRepo social.YoutubeChannelRepository,
	mediaStore MediaStore,
	viewCache ViewCache,
	logger logger.Interface,
) *DisconnectAccountUseCase {
	return &DisconnectAccountUseCase{
		accountRepo: accountRepo,
		channelRepo: channelRepo,
		mediaStore:  mediaStore,
		viewCache:   viewCache,
		logger:      logger,
	}
}

func (uc *DisconnectAccountUseCase) Execute(ctx context.Context, userID uint, target social.DeletionTarget) error {
	if target.IsZero() {
		return errors.NewValidationError("deletion target is required")
	}

	var (
		rows int64
		err  error
	)
	switch target.Provider() {
	case social.ProviderInstagram:
		rows, err = uc.accountRepo.DeleteByBusinessAccountID(userID, target.AccountID())
	case social.ProviderYoutube:
		rows, err = uc.channelRepo.DeleteByChannelID(userID, target.AccountID())
	default:
		return errors.NewValidationError("unsupported provider")
	}
	if err != nil {
		uc.logger.Errorw("failed to delete linked account row",
			"user_id", userID,
			"provider", target.Provider(),
			"account_id", target.AccountID(),
			"error", err)
		return errors.NewInternalError(ErrMsgDisconnectFailed)
	}

	if rows == 0 {
		// Absent rows are deleted successfully; nothing to clean up.
		uc.logger.Infow("disconnect for absent account treated as success",
			"user_id", userID,
			"provider", target.Provider(),
			"account_id", target.AccountID())
		return nil
	}

	if err := uc.mediaStore.DeleteAccountMedia(ctx, userID, target.Provider(), target.AccountID()); err != nil {
		// Row is already gone; the stored objects stay orphaned.
		uc.logger.Warnw("account media left orphaned after row deletion",
			"user_id", userID,
			"provider", target.Provider(),
			"account_id", target.AccountID(),
			"error", err)
	}

	uc.viewCache.Invalidate(ctx, userID)

	uc.logger.Infow("account disconnected",
		"user_id", userID,
		"provider", target.Provider(),
		"account_id", target.AccountID())

	return nil
}
