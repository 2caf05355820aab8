package usecases

import (
	"context"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/infrastructure/graph"
	"linkdeck/internal/shared/logger"
)

type mockInstagramAccountRepo struct {
	CreateFunc                    func(account *social.InstagramAccount) error
	GetByBusinessAccountIDFunc    func(userID uint, businessAccountID string) (*social.InstagramAccount, error)
	ListByUserIDFunc              func(userID uint) ([]*social.InstagramAccount, error)
	DeleteByBusinessAccountIDFunc func(userID uint, businessAccountID string) (int64, error)
}

func (m *mockInstagramAccountRepo) Create(account *social.InstagramAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(account)
	}
	return nil
}

func (m *mockInstagramAccountRepo) GetByBusinessAccountID(userID uint, businessAccountID string) (*social.InstagramAccount, error) {
	if m.GetByBusinessAccountIDFunc != nil {
		return m.GetByBusinessAccountIDFunc(userID, businessAccountID)
	}
	return nil, nil
}

func (m *mockInstagramAccountRepo) ListByUserID(userID uint) ([]*social.InstagramAccount, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(userID)
	}
	return nil, nil
}

func (m *mockInstagramAccountRepo) DeleteByBusinessAccountID(userID uint, businessAccountID string) (int64, error) {
	if m.DeleteByBusinessAccountIDFunc != nil {
		return m.DeleteByBusinessAccountIDFunc(userID, businessAccountID)
	}
	return 0, nil
}

type mockYoutubeChannelRepo struct {
	CreateFunc            func(channel *social.YoutubeChannel) error
	GetByChannelIDFunc    func(userID uint, channelID string) (*social.YoutubeChannel, error)
	ListByUserIDFunc      func(userID uint) ([]*social.YoutubeChannel, error)
	DeleteByChannelIDFunc func(userID uint, channelID string) (int64, error)
}

func (m *mockYoutubeChannelRepo) Create(channel *social.YoutubeChannel) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(channel)
	}
	return nil
}

func (m *mockYoutubeChannelRepo) GetByChannelID(userID uint, channelID string) (*social.YoutubeChannel, error) {
	if m.GetByChannelIDFunc != nil {
		return m.GetByChannelIDFunc(userID, channelID)
	}
	return nil, nil
}

func (m *mockYoutubeChannelRepo) ListByUserID(userID uint) ([]*social.YoutubeChannel, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(userID)
	}
	return nil, nil
}

func (m *mockYoutubeChannelRepo) DeleteByChannelID(userID uint, channelID string) (int64, error) {
	if m.DeleteByChannelIDFunc != nil {
		return m.DeleteByChannelIDFunc(userID, channelID)
	}
	return 0, nil
}

type mockGraphClient struct {
	GetUsernameFunc             func(ctx context.Context, businessAccountID, accessToken string) (string, error)
	ExchangeLongLivedTokenFunc  func(ctx context.Context, shortLivedToken string) (string, error)
	GetPublishingLimitFunc      func(ctx context.Context, businessAccountID, accessToken string) (*graph.PublishingLimit, error)
	ListInstagramCandidatesFunc func(ctx context.Context, userAccessToken string) ([]social.Candidate, error)
}

func (m *mockGraphClient) GetUsername(ctx context.Context, businessAccountID, accessToken string) (string, error) {
	if m.GetUsernameFunc != nil {
		return m.GetUsernameFunc(ctx, businessAccountID, accessToken)
	}
	return "", nil
}

func (m *mockGraphClient) ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (string, error) {
	if m.ExchangeLongLivedTokenFunc != nil {
		return m.ExchangeLongLivedTokenFunc(ctx, shortLivedToken)
	}
	return "", nil
}

func (m *mockGraphClient) GetPublishingLimit(ctx context.Context, businessAccountID, accessToken string) (*graph.PublishingLimit, error) {
	if m.GetPublishingLimitFunc != nil {
		return m.GetPublishingLimitFunc(ctx, businessAccountID, accessToken)
	}
	return nil, nil
}

func (m *mockGraphClient) ListInstagramCandidates(ctx context.Context, userAccessToken string) ([]social.Candidate, error) {
	if m.ListInstagramCandidatesFunc != nil {
		return m.ListInstagramCandidatesFunc(ctx, userAccessToken)
	}
	return nil, nil
}

type mockMediaStore struct {
	RehostProfilePictureFunc func(ctx context.Context, sourceURL string, userID uint, provider social.Provider, accountID string) (string, error)
	DeleteAccountMediaFunc   func(ctx context.Context, userID uint, provider social.Provider, accountID string) error
}

func (m *mockMediaStore) RehostProfilePicture(ctx context.Context, sourceURL string, userID uint, provider social.Provider, accountID string) (string, error) {
	if m.RehostProfilePictureFunc != nil {
		return m.RehostProfilePictureFunc(ctx, sourceURL, userID, provider, accountID)
	}
	return "", nil
}

func (m *mockMediaStore) DeleteAccountMedia(ctx context.Context, userID uint, provider social.Provider, accountID string) error {
	if m.DeleteAccountMediaFunc != nil {
		return m.DeleteAccountMediaFunc(ctx, userID, provider, accountID)
	}
	return nil
}

type mockOAuthClient struct {
	GetAuthURLFunc   func(state string) string
	ExchangeCodeFunc func(ctx context.Context, code string) (string, error)
}

func (m *mockOAuthClient) GetAuthURL(state string) string {
	if m.GetAuthURLFunc != nil {
		return m.GetAuthURLFunc(state)
	}
	return ""
}

func (m *mockOAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	if m.ExchangeCodeFunc != nil {
		return m.ExchangeCodeFunc(ctx, code)
	}
	return "", nil
}

type mockStateStore struct {
	IssueFunc   func(ctx context.Context, userID uint) (string, error)
	ConsumeFunc func(ctx context.Context, state string) (uint, error)
}

func (m *mockStateStore) Issue(ctx context.Context, userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, userID)
	}
	return "", nil
}

func (m *mockStateStore) Consume(ctx context.Context, state string) (uint, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, state)
	}
	return 0, nil
}

type mockViewCache struct {
	GetFunc        func(ctx context.Context, userID uint) ([]byte, error)
	SetFunc        func(ctx context.Context, userID uint, data []byte)
	InvalidateFunc func(ctx context.Context, userID uint)

	invalidated []uint
}

func (m *mockViewCache) Get(ctx context.Context, userID uint) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockViewCache) Set(ctx context.Context, userID uint, data []byte) {
	if m.SetFunc != nil {
		m.SetFunc(ctx, userID, data)
	}
}

func (m *mockViewCache) Invalidate(ctx context.Context, userID uint) {
	m.invalidated = append(m.invalidated, userID)
	if m.InvalidateFunc != nil {
		m.InvalidateFunc(ctx, userID)
	}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
