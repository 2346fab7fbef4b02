package importer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/resolver"
	"github.com/capitolwatch/backend/internal/sources"
)

type fakeResolver struct {
	nextID int64
	byKey  map[string]int64
	fail   map[string]error
	calls  []string
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		nextID: 1,
		byKey:  make(map[string]int64),
		fail:   make(map[string]error),
	}
}

func (r *fakeResolver) Resolve(_ context.Context, source, externalID string, _ resolver.Candidate) (int64, error) {
	key := source + ":" + externalID
	r.calls = append(r.calls, key)
	if err, ok := r.fail[key]; ok {
		return 0, err
	}
	if id, ok := r.byKey[key]; ok {
		return id, nil
	}
	id := r.nextID
	r.nextID++
	r.byKey[key] = id
	return id, nil
}

type fakeFECSource struct {
	candidates    []sources.FECCandidate
	contributions map[string][]sources.FECContribution
}

func (s *fakeFECSource) FetchCandidates(context.Context) ([]sources.FECCandidate, error) {
	return s.candidates, nil
}

func (s *fakeFECSource) FetchContributions(_ context.Context, candidateID string) ([]sources.FECContribution, error) {
	return s.contributions[candidateID], nil
}

type fakeContributionStore struct {
	created []db.CreateContributionParams
	failAt  int
}

func (s *fakeContributionStore) CreateContribution(_ context.Context, arg db.CreateContributionParams) (db.Contribution, error) {
	if s.failAt > 0 && len(s.created)+1 == s.failAt {
		return db.Contribution{}, errors.New("insert failed")
	}
	s.created = append(s.created, arg)
	return db.Contribution{ID: int64(len(s.created))}, nil
}

func TestFECImporterNormalizesAndCounts(t *testing.T) {
	t.Parallel()

	source := &fakeFECSource{
		candidates: []sources.FECCandidate{
			{CandidateID: "H8CA05035", Name: "Pelosi, Nancy", Party: "DEM", State: "CA"},
		},
		contributions: map[string][]sources.FECContribution{
			"H8CA05035": {
				{CandidateID: "H8CA05035", ContributorOrg: "Acme PAC", Amount: "$1,500.00", ContributionDate: "2023-05-01"},
				{CandidateID: "H8CA05035", ContributorName: "Jane Doe", Amount: "250", ContributionDate: "2023-06-15"},
				{CandidateID: "H8CA05035", ContributorOrg: "Broken Corp", Amount: "100", ContributionDate: "not-a-date"},
			},
		},
	}
	store := &fakeContributionStore{}
	res := newFakeResolver()

	result, err := NewFECImporter(source, res, store).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Processed != 3 {
		t.Fatalf("got processed %d, want 3", result.Processed)
	}
	if result.Inserted != 2 {
		t.Fatalf("got inserted %d, want 2", result.Inserted)
	}
	if got := store.created[0].Amount; got != "1500" {
		t.Fatalf("got amount %q, want %q", got, "1500")
	}
	// Contributor name stands in when the record has no organization.
	if got := store.created[1].Organization; got != "Jane Doe" {
		t.Fatalf("got organization %q, want %q", got, "Jane Doe")
	}
	if got := res.calls[0]; got != "fec:H8CA05035" {
		t.Fatalf("got resolve call %q, want %q", got, "fec:H8CA05035")
	}
}

func TestFECImporterSkipsUnresolvableCandidate(t *testing.T) {
	t.Parallel()

	source := &fakeFECSource{
		candidates: []sources.FECCandidate{
			{CandidateID: "BAD", Name: "Broken, Record"},
			{CandidateID: "H8CA05035", Name: "Pelosi, Nancy", Party: "D", State: "CA"},
		},
		contributions: map[string][]sources.FECContribution{
			"H8CA05035": {
				{CandidateID: "H8CA05035", ContributorOrg: "Acme PAC", Amount: "100", ContributionDate: "2023-05-01"},
			},
		},
	}
	res := newFakeResolver()
	res.fail["fec:BAD"] = errors.New("resolve failed")
	store := &fakeContributionStore{}

	result, err := NewFECImporter(source, res, store).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Inserted != 1 {
		t.Fatalf("got inserted %d, want 1", result.Inserted)
	}
}

type fakeCongressSource struct {
	members []sources.CongressMember
	votes   map[string][]sources.MemberVote
}

func (s *fakeCongressSource) FetchMembers(context.Context, int) ([]sources.CongressMember, error) {
	return s.members, nil
}

func (s *fakeCongressSource) FetchMemberVotes(_ context.Context, _, _ int, bioguideID string) ([]sources.MemberVote, error) {
	return s.votes[bioguideID], nil
}

type fakeVoteStore struct {
	created  []db.CreateVoteParams
	existing map[string]bool
}

func voteKey(arg db.VoteExistsParams) string {
	return fmt.Sprintf("%d:%s:%s", arg.PoliticianID, arg.BillName, arg.VoteDate.Format("2006-01-02"))
}

func (s *fakeVoteStore) VoteExists(_ context.Context, arg db.VoteExistsParams) (bool, error) {
	return s.existing[voteKey(arg)], nil
}

func (s *fakeVoteStore) CreateVote(_ context.Context, arg db.CreateVoteParams) (db.Vote, error) {
	s.created = append(s.created, arg)
	s.existing[voteKey(db.VoteExistsParams{PoliticianID: arg.PoliticianID, BillName: arg.BillName, VoteDate: arg.VoteDate})] = true
	return db.Vote{ID: int64(len(s.created))}, nil
}

func TestCongressImporterDedupesOnReimport(t *testing.T) {
	t.Parallel()

	source := &fakeCongressSource{
		members: []sources.CongressMember{
			{BioguideID: "P000197", Name: "Pelosi, Nancy", Party: "D", State: "CA"},
		},
		votes: map[string][]sources.MemberVote{
			"P000197": {
				{BioguideID: "P000197", Bill: "H.R. 1234", BillDescription: "Tech Regulation Act", VoteDate: "2023-05-10", VoteResult: "Yea"},
				{BioguideID: "P000197", Bill: "S. 99", VoteDate: "2023-05-12", VoteResult: "Nay"},
			},
		},
	}
	store := &fakeVoteStore{existing: make(map[string]bool)}
	res := newFakeResolver()
	imp := NewCongressImporter(source, res, store)

	first, err := imp.Run(context.Background(), 118, 1)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Inserted != 2 {
		t.Fatalf("got inserted %d, want 2", first.Inserted)
	}

	second, err := imp.Run(context.Background(), 118, 1)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Processed != 2 {
		t.Fatalf("got processed %d, want 2", second.Processed)
	}
	if second.Inserted != 0 {
		t.Fatalf("got inserted %d on re-import, want 0", second.Inserted)
	}
	if len(store.created) != 2 {
		t.Fatalf("got %d votes total, want 2", len(store.created))
	}
}

func TestCongressImporterSkipsDegenerateVotes(t *testing.T) {
	t.Parallel()

	source := &fakeCongressSource{
		members: []sources.CongressMember{
			{BioguideID: "O000174", Name: "Ossoff, Jon", Party: "D", State: "GA"},
		},
		votes: map[string][]sources.MemberVote{
			"O000174": {
				{BioguideID: "O000174", Bill: "", VoteDate: "2023-05-10", VoteResult: "Yea"},
				{BioguideID: "O000174", Bill: "S. 1", VoteDate: "never", VoteResult: "Yea"},
				{BioguideID: "O000174", Bill: "S. 2", VoteDate: "2023-05-11", VoteResult: "Yea"},
			},
		},
	}
	store := &fakeVoteStore{existing: make(map[string]bool)}

	result, err := NewCongressImporter(source, newFakeResolver(), store).Run(context.Background(), 118, 1)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Processed != 3 {
		t.Fatalf("got processed %d, want 3", result.Processed)
	}
	if result.Inserted != 1 {
		t.Fatalf("got inserted %d, want 1", result.Inserted)
	}
}

type fakeStockSource struct {
	house  []sources.StockDisclosure
	senate []sources.StockDisclosure
}

func (s *fakeStockSource) FetchHouseDisclosures(context.Context) ([]sources.StockDisclosure, error) {
	return s.house, nil
}

func (s *fakeStockSource) FetchSenateDisclosures(context.Context) ([]sources.StockDisclosure, error) {
	return s.senate, nil
}

type fakeStockStore struct {
	created []db.CreateStockTransactionParams
}

func (s *fakeStockStore) CreateStockTransaction(_ context.Context, arg db.CreateStockTransactionParams) (db.StockTransaction, error) {
	s.created = append(s.created, arg)
	return db.StockTransaction{ID: int64(len(s.created))}, nil
}

func TestStockImporterBothChambers(t *testing.T) {
	t.Parallel()

	source := &fakeStockSource{
		house: []sources.StockDisclosure{
			{FilerID: "pelosi-nancy", FilerName: "Pelosi, Nancy", Party: "D", State: "CA", StockSymbol: "NVDA", StockName: "NVIDIA Corp", TransactionType: "Purchase", Amount: "$250,000", TransactionDate: "2023-05-01", RelatedBill: "H.R. 1234"},
		},
		senate: []sources.StockDisclosure{
			{FilerID: "ossoff-jon", FilerName: "Ossoff, Jon", Party: "D", State: "GA", StockName: "Apple Inc", TransactionType: "Sale (Full)", Amount: "15,000", TransactionDate: "2023-06-01"},
		},
	}
	store := &fakeStockStore{}
	res := newFakeResolver()

	result, err := NewStockImporter(source, res, store).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Processed != 2 || result.Inserted != 2 {
		t.Fatalf("got %+v, want 2 processed and 2 inserted", result)
	}

	house := store.created[0]
	if house.StockName != "NVDA" {
		t.Fatalf("got stock name %q, want symbol %q", house.StockName, "NVDA")
	}
	if house.TradeType != "BUY" {
		t.Fatalf("got trade type %q, want %q", house.TradeType, "BUY")
	}
	if house.Amount != "250000" {
		t.Fatalf("got amount %q, want %q", house.Amount, "250000")
	}
	if !house.PotentialConflict {
		t.Fatal("expected large house trade to be flagged")
	}
	if house.RelatedBill == nil || *house.RelatedBill != "H.R. 1234" {
		t.Fatalf("got related bill %v, want H.R. 1234", house.RelatedBill)
	}

	senate := store.created[1]
	if senate.StockName != "Apple Inc" {
		t.Fatalf("got stock name %q, want %q", senate.StockName, "Apple Inc")
	}
	if senate.TradeType != "SELL" {
		t.Fatalf("got trade type %q, want %q", senate.TradeType, "SELL")
	}
	if senate.PotentialConflict {
		t.Fatal("small senate trade should not be flagged")
	}
	if senate.RelatedBill != nil {
		t.Fatalf("got related bill %v, want nil", senate.RelatedBill)
	}

	if _, ok := res.byKey["house_fd:pelosi-nancy"]; !ok {
		t.Fatal("house filer not resolved under house_fd")
	}
	if _, ok := res.byKey["senate_fd:ossoff-jon"]; !ok {
		t.Fatal("senate filer not resolved under senate_fd")
	}
}

func TestStockImporterSanitizesText(t *testing.T) {
	t.Parallel()

	source := &fakeStockSource{
		house: []sources.StockDisclosure{
			{FilerID: "pelosi-nancy", FilerName: "Pelosi, Nancy", Party: "D", State: "CA", StockSymbol: "NV\x00DA", StockName: "NVIDIA\x00 Corp", TransactionType: "Purchase", Amount: "$1,000", TransactionDate: "2023-05-01", RelatedBill: "H.R.\x00 1234"},
		},
	}
	store := &fakeStockStore{}

	result, err := NewStockImporter(source, newFakeResolver(), store).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Inserted != 1 {
		t.Fatalf("got %+v, want 1 inserted", result)
	}

	got := store.created[0]
	if got.StockName != "NVDA" {
		t.Fatalf("got stock name %q, want %q", got.StockName, "NVDA")
	}
	if got.RelatedBill == nil || *got.RelatedBill != "H.R. 1234" {
		t.Fatalf("got related bill %v, want H.R. 1234", got.RelatedBill)
	}
}

func TestTradeTypeMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "purchase", raw: "Purchase", want: "BUY"},
		{name: "sale", raw: "sale", want: "SELL"},
		{name: "partial_sale", raw: "Sale (Partial)", want: "SELL"},
		{name: "exchange_passes_through", raw: "Exchange", want: "EXCHANGE"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tradeType(tc.raw); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
