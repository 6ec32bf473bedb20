package service

import (
	"testing"

	"github.com/alexanderramin/almanac/internal/knowledge"
	"github.com/alexanderramin/almanac/internal/repository"
	"github.com/alexanderramin/almanac/internal/testutil"
	"github.com/alexanderramin/almanac/internal/wisdom"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testServices struct {
	kb       *knowledge.KnowledgeBase
	wisdom   WisdomService
	profiles ProfileService
	logs     *observer.ObservedLogs
}

func setupServices(t *testing.T) testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	kb := testutil.DefaultKnowledgeBase(t)

	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewZapUseCaseObserver(zap.New(core))

	return testServices{
		kb:       kb,
		wisdom:   NewWisdomService(kb, wisdom.DefaultOptions(), repo, obs),
		profiles: NewProfileService(repo, testutil.NewTestUoW(database), obs),
		logs:     logs,
	}
}
