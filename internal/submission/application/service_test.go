package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
	"github.com/vividmgmt/vividbackend/pkg/metrics"
)

// fakeRepo 内存版仓储
type fakeRepo struct {
	insertErr error
	rows      []domain.Submission
}

func (r *fakeRepo) Insert(ctx context.Context, sub *domain.Submission) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.rows = append(r.rows, *sub)
	return nil
}

func (r *fakeRepo) List(ctx context.Context) ([]domain.Submission, error) {
	out := make([]domain.Submission, len(r.rows))
	copy(out, r.rows)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return &r.rows[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) UpdateOnboarding(ctx context.Context, id string, patch domain.OnboardingPatch) error {
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePublisher struct {
	events []any
}

func (p *fakePublisher) Publish(ctx context.Context, topic, key string, event any) error {
	p.events = append(p.events, event)
	return nil
}

func newService(repo *fakeRepo, store ObjectStore) (*SubmissionService, *fakePublisher) {
	catalog := i18n.NewCatalog()
	pub := &fakePublisher{}
	svc := NewSubmissionService(
		repo,
		NewUploader(store, "applicant-photos"),
		NewValidator(catalog),
		pub,
		catalog,
		metrics.New("test"),
		"vivid.submissions",
		5,
	)
	return svc, pub
}

func fileSetOf(files ...domain.File) *domain.FileSet {
	s := domain.NewFileSet(5)
	s.Add(files...)
	return s
}

func TestSubmitSuccessWritesNormalizedRecord(t *testing.T) {
	repo := &fakeRepo{}
	svc, pub := newService(repo, &fakeStore{})

	form := validForm()
	sub, err := svc.Submit(context.Background(), i18n.LocaleEN, form, fileSetOf(imageFiles(6)...))

	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Jane Doe", sub.FullName)

	urls := sub.ImageURLList()
	require.Len(t, urls, 6)
	for i, u := range urls {
		assert.Contains(t, u, fmt.Sprintf("photo%d.jpg", i+1))
	}

	require.Len(t, pub.events, 1)
	received := pub.events[0].(domain.SubmissionReceived)
	assert.Equal(t, sub.ID, received.SubmissionID)
	assert.Equal(t, 6, received.ImageCount)
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	repo := &fakeRepo{}
	store := &fakeStore{}
	svc, pub := newService(repo, store)

	_, err := svc.Submit(context.Background(), i18n.LocaleEN, validForm(), fileSetOf(imageFiles(3)...))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "Please select at least 5 images (3 selected).")
	assert.Empty(t, store.uploads)
	assert.Empty(t, repo.rows)
	assert.Empty(t, pub.events)
}

func TestSubmitUploadFailureAbortsBeforeWrite(t *testing.T) {
	repo := &fakeRepo{}
	store := &fakeStore{failOnCall: 3}
	svc, _ := newService(repo, store)

	_, err := svc.Submit(context.Background(), i18n.LocaleEN, validForm(), fileSetOf(imageFiles(6)...))

	var ue *UploadError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "photo3.jpg", ue.FileName)
	assert.Empty(t, repo.rows)
}

func TestSubmitWriteFailureSurfacesStoreError(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("duplicate key value violates unique constraint")}
	svc, _ := newService(repo, &fakeStore{})

	_, err := svc.Submit(context.Background(), i18n.LocaleEN, validForm(), fileSetOf(imageFiles(5)...))

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "duplicate key value violates unique constraint", we.Error())
}

func TestSubmitChainNoForcesDependentNulls(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newService(repo, &fakeStore{})

	// 界面上残留的旧答案不得进入记录
	form := validForm()
	form.HasAccount = boolPtr(false)
	form.IsVerified = boolPtr(true)
	form.HasVerifiedPayment = boolPtr(true)
	form.EarningsLast30Days = "$5,000"

	sub, err := svc.Submit(context.Background(), i18n.LocaleEN, form, fileSetOf(imageFiles(5)...))
	require.NoError(t, err)

	require.NotNil(t, sub.HasAccount)
	assert.False(t, *sub.HasAccount)
	assert.Nil(t, sub.IsVerified)
	assert.Nil(t, sub.HasVerifiedPayment)
	assert.Nil(t, sub.EarningsLast30Days)
}

func TestSubmitChainVerifiedNoForcesPaymentNull(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newService(repo, &fakeStore{})

	form := validForm()
	form.HasAccount = boolPtr(true)
	form.IsVerified = boolPtr(false)
	form.HasVerifiedPayment = boolPtr(true)
	form.EarningsLast30Days = "$5,000"

	sub, err := svc.Submit(context.Background(), i18n.LocaleEN, form, fileSetOf(imageFiles(5)...))
	require.NoError(t, err)

	assert.NotNil(t, sub.IsVerified)
	assert.False(t, *sub.IsVerified)
	assert.Nil(t, sub.HasVerifiedPayment)
	assert.Nil(t, sub.EarningsLast30Days)
}

func TestSubmitFullChainKeepsEarnings(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newService(repo, &fakeStore{})

	form := validForm()
	form.HasAccount = boolPtr(true)
	form.IsVerified = boolPtr(true)
	form.HasVerifiedPayment = boolPtr(true)
	form.EarningsLast30Days = "$5,000"

	sub, err := svc.Submit(context.Background(), i18n.LocaleEN, form, fileSetOf(imageFiles(5)...))
	require.NoError(t, err)

	require.NotNil(t, sub.EarningsLast30Days)
	assert.Equal(t, "$5,000", *sub.EarningsLast30Days)
}

func TestSubmitContactMethodExclusivity(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newService(repo, &fakeStore{})

	// Telegram：whatsapp_number 必须为 null
	form := validForm()
	form.PreferredContact = domain.ContactTelegram
	form.TelegramUsername = "janedoe"
	form.WhatsappNumber = "+111"
	sub, err := svc.Submit(context.Background(), i18n.LocaleEN, form, fileSetOf(imageFiles(5)...))
	require.NoError(t, err)
	assert.Nil(t, sub.WhatsappNumber)
	require.NotNil(t, sub.TelegramUsername)
	assert.Equal(t, "janedoe", *sub.TelegramUsername)

	// WhatsApp（复用电话号码）：telegram_username 必须为 null
	form = validForm()
	form.PreferredContact = domain.ContactWhatsApp
	form.UsePhoneForWhatsapp = true
	form.TelegramUsername = "stale"
	sub, err = svc.Submit(context.Background(), i18n.LocaleEN, form, fileSetOf(imageFiles(5)...))
	require.NoError(t, err)
	assert.Nil(t, sub.TelegramUsername)
	require.NotNil(t, sub.WhatsappNumber)
	assert.Equal(t, form.PhoneNumber, *sub.WhatsappNumber)
}

func TestSubmitNonImageExcludedFromRecord(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newService(repo, &fakeStore{})

	files := imageFiles(5)
	files = append(files, domain.File{Name: "resume.pdf", ContentType: "application/pdf"})

	sub, err := svc.Submit(context.Background(), i18n.LocaleEN, validForm(), fileSetOf(files...))
	require.NoError(t, err)
	assert.Len(t, sub.ImageURLList(), 5)
}

func TestSubmitRoundTripThroughRepo(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newService(repo, &fakeStore{})

	form := validForm()
	form.HasAccount = boolPtr(true)
	form.IsVerified = boolPtr(true)
	form.HasVerifiedPayment = boolPtr(false)

	sub, err := svc.Submit(context.Background(), i18n.LocaleEN, form, fileSetOf(imageFiles(5)...))
	require.NoError(t, err)

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := rows[0]
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, sub.FullName, got.FullName)
	assert.Equal(t, sub.Email, got.Email)
	assert.Equal(t, sub.ImageURLList(), got.ImageURLList())
	assert.Equal(t, sub.HasAccount, got.HasAccount)
	assert.Equal(t, sub.IsVerified, got.IsVerified)
	assert.Equal(t, sub.HasVerifiedPayment, got.HasVerifiedPayment)
}
