//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel-storefront/internal/infra"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/pkg/password"
	"hotel-storefront/internal/usecase/commands"
	"hotel-storefront/tests/common/builder"
	commandsmock "hotel-storefront/tests/mock/commands"
	queriesmock "hotel-storefront/tests/mock/queries"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockUserReadStore
	mockTokens    *commandsmock.MockTokenIssuer
	mockHasher    *commandsmock.MockPasswordHasher
	uow           *fakeUoW
	clock         *clock.MockClock
	cmds          commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.build()
}

func (s *AuthCommandsTestSuite) SetupSubTest() {
	s.build()
}

func (s *AuthCommandsTestSuite) build() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.mockTokens = commandsmock.NewMockTokenIssuer(s.mockCtrl)
	s.mockHasher = commandsmock.NewMockPasswordHasher(s.mockCtrl)
	s.uow = newFakeUoW()
	s.clock = clock.NewMockClock(baseTime)
	s.cmds = commands.NewAuthCommands(s.uow, s.mockReadStore, s.mockTokens, s.mockHasher, s.clock)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	req := builder.NewAuthBuilder().BuildDTO()
	view := builder.NewUserBuilder().BuildReadModel()

	s.Run("成功: トークン発行とlast_login更新", func() {
		expiresAt := baseTime.Add(time.Hour)
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, "hash", nil)
		s.mockHasher.EXPECT().Compare("hash", req.Password).Return(nil)
		s.mockTokens.EXPECT().GenerateToken(view.ID, "customer").Return("jwt", expiresAt, nil)

		result, err := s.cmds.Login(ctx, req)

		s.Require().NoError(err)
		s.Equal(view.ID, result.UserID)
		s.Equal("jwt", result.AccessToken)
		s.Equal(expiresAt, result.ExpiresAt)
		s.Equal(view.ID, s.uow.tx.users.lastLogin[0])
	})

	s.Run("メールは正規化して検索", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, "hash", nil)
		s.mockHasher.EXPECT().Compare("hash", req.Password).Return(nil)
		s.mockTokens.EXPECT().GenerateToken(view.ID, "customer").Return("jwt", baseTime, nil)

		_, err := s.cmds.Login(ctx, builder.NewAuthBuilder().WithEmail("  Test@Example.COM ").BuildDTO())
		s.NoError(err)
	})

	s.Run("未登録メールもダミー比較して同じエラー", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", notFound())
		s.mockHasher.EXPECT().CompareDummy(req.Password).Return(password.ErrComparisonFailed).Times(1)

		_, err := s.cmds.Login(ctx, req)

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
		s.Equal(0, s.uow.calls)
	})

	s.Run("DB障害も認証失敗として扱う", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", infra.WrapRepoErr("boom", errors.New("conn reset")))
		s.mockHasher.EXPECT().CompareDummy(req.Password).Return(password.ErrComparisonFailed)

		_, err := s.cmds.Login(ctx, req)
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("パスワード不一致", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, "hash", nil)
		s.mockHasher.EXPECT().Compare("hash", req.Password).Return(password.ErrComparisonFailed)

		_, err := s.cmds.Login(ctx, req)
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("無効ユーザー", func() {
		inactive := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(inactive, "hash", nil)
		s.mockHasher.EXPECT().Compare("hash", req.Password).Return(nil)

		_, err := s.cmds.Login(ctx, req)
		s.True(errs.Is(err, commands.ErrUserInactive))
	})

	s.Run("トークン生成失敗", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, "hash", nil)
		s.mockHasher.EXPECT().Compare("hash", req.Password).Return(nil)
		s.mockTokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("", time.Time{}, errors.New("signing failed"))

		_, err := s.cmds.Login(ctx, req)
		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})

	s.Run("last_login更新失敗でもログインは成功", func() {
		s.uow.tx.users.lastLoginErr = errors.New("deadlock")
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, "hash", nil)
		s.mockHasher.EXPECT().Compare("hash", req.Password).Return(nil)
		s.mockTokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("jwt", baseTime, nil)

		result, err := s.cmds.Login(ctx, req)
		s.NoError(err)
		s.Equal("jwt", result.AccessToken)
	})
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()
	req := builder.NewAuthBuilder().WithEmail("New@Example.com").BuildRegisterDTO()

	s.Run("成功: customerとして作成", func() {
		s.mockHasher.EXPECT().Hash(req.Password).Return("hashed", nil)

		result, err := s.cmds.Register(ctx, req)

		s.Require().NoError(err)
		s.Equal(s.uow.tx.users.createID, result.UserID)
		s.Require().Len(s.uow.tx.users.created, 1)
		created := s.uow.tx.users.created[0]
		s.Equal("new@example.com", created.Email().Value())
		s.Equal("hashed", created.PasswordHash())
		s.Equal("customer", created.Role().String())
	})

	s.Run("重複メール", func() {
		s.uow.tx.users.createErr = infra.WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505"})
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)

		_, err := s.cmds.Register(ctx, req)
		s.True(errs.Is(err, commands.ErrEmailTaken))
	})

	s.Run("DB障害", func() {
		s.uow.withinErr = errors.New("tx begin failed")
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)

		_, err := s.cmds.Register(ctx, req)
		s.True(errs.Is(err, commands.ErrRegistrationFailed))
	})

	s.Run("入力不正はハッシュ前に拒否", func() {
		cases := []struct {
			name  string
			email string
			pass  string
		}{
			{name: "bad email", email: "nope", pass: "password123"},
			{name: "short password", email: "a@example.com", pass: "short"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, err := s.cmds.Register(ctx, builder.NewAuthBuilder().WithEmail(tc.email).WithPassword(tc.pass).BuildRegisterDTO())
				s.True(errs.Is(err, commands.ErrInvalidInput))
				s.Equal(0, s.uow.calls)
			})
		}
	})
}

func (s *AuthCommandsTestSuite) TestRequestPasswordReset() {
	ctx := context.Background()
	req := builder.NewAuthBuilder().BuildPasswordResetDTO()

	s.Run("有効ユーザーには通知ジョブを積む", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, "hash", nil)

		s.Require().NoError(s.cmds.RequestPasswordReset(ctx, req))

		jobs := s.uow.tx.notifications.jobs
		s.Require().Len(jobs, 1)
		s.Equal(commands.JobKindPasswordReset, jobs[0].kind)
		s.Equal(view.Email, jobs[0].topic)
		s.Equal(baseTime, jobs[0].runAt)

		var payload map[string]any
		s.Require().NoError(json.Unmarshal(jobs[0].payload, &payload))
		s.Equal(view.ID.String(), payload["user_id"])
		s.Equal(view.Email, payload["email"])
	})

	s.Run("未登録メールは黙って成功", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", notFound())

		s.NoError(s.cmds.RequestPasswordReset(ctx, req))
		s.Empty(s.uow.tx.notifications.jobs)
	})

	s.Run("無効ユーザーも黙って成功", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().AsInactive().BuildReadModel(), "hash", nil)

		s.NoError(s.cmds.RequestPasswordReset(ctx, req))
		s.Empty(s.uow.tx.notifications.jobs)
	})

	s.Run("DB障害は返す", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", infra.WrapRepoErr("boom", errors.New("conn reset")))

		s.Error(s.cmds.RequestPasswordReset(ctx, req))
	})
}
