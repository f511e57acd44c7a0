package matching

import (
	"fmt"
	"testing"
	"time"

	"sole-exchange/internal/exchangeerrors"
	model "sole-exchange/internal/models"
	"sole-exchange/internal/repository"
	"sole-exchange/internal/settlement"

	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	repo.AddProduct(model.Product{ProductID: "prod1", Name: "Test Shoe", Brand: "TestBrand"})
	repo.AddVariant(model.SizeVariant{SizeVariantID: "var1", ProductID: "prod1", Label: "US 10"})
	engine := NewEngine(repo, settlement.NewRecorder(repo, 0))
	return engine, repo
}

func testBid(bidID, userID string, price int64, createdAt time.Time) model.Bid {
	return model.Bid{Offer: model.Offer{
		OfferID:       bidID,
		ProductID:     "prod1",
		SizeVariantID: "var1",
		UserID:        userID,
		Price:         price,
		CreatedAt:     createdAt,
		ValidUntil:    createdAt.Add(7 * 24 * time.Hour),
		Status:        model.OfferOpen,
	}}
}

func testAsk(askID, userID string, price int64, createdAt time.Time) model.Ask {
	return model.Ask{
		Offer: model.Offer{
			OfferID:       askID,
			ProductID:     "prod1",
			SizeVariantID: "var1",
			UserID:        userID,
			Price:         price,
			CreatedAt:     createdAt,
			ValidUntil:    createdAt.Add(7 * 24 * time.Hour),
			Status:        model.OfferOpen,
		},
		Condition: model.ConditionNew,
		Packaging: model.PackagingOriginalBox,
	}
}

// Ask @ $100, Ask @ $90, Bid @ $95: the bid must take the $90 ask and the
// order price is the resting ask's price.
func TestEngine_BidMatchesBestAskAtRestingPrice(t *testing.T) {
	t.Parallel()

	engine, repo := newTestEngine(t)
	now := time.Now().UTC()

	res, err := engine.PlaceAsk(testAsk("ask-100", "seller1", 10000, now))
	require.NoError(t, err)
	require.Equal(t, OutcomeResting, res.Outcome)

	res, err = engine.PlaceAsk(testAsk("ask-90", "seller2", 9000, now.Add(time.Second)))
	require.NoError(t, err)
	require.Equal(t, OutcomeResting, res.Outcome)

	res, err = engine.PlaceBid(testBid("bid-95", "buyer", 9500, now.Add(2*time.Second)))
	require.NoError(t, err)
	require.Equal(t, OutcomeSettled, res.Outcome)
	require.NotNil(t, res.Order)
	require.Equal(t, int64(9000), res.Order.Price, "order price is the resting ask's price")
	require.Equal(t, "ask-90", res.Order.AskID, "lowest-priced ask matches, not an arbitrary one")
	require.NotNil(t, res.Transaction)
	require.Equal(t, res.Order.OrderID, res.Transaction.OrderID)

	// The $100 ask is still open and resting.
	ask, err := repo.GetAsk("ask-100")
	require.NoError(t, err)
	require.Equal(t, model.OfferOpen, ask.Status)
	summary := engine.Summary(model.MarketKey{ProductID: "prod1", SizeVariantID: "var1"})
	require.NotNil(t, summary.BestAsk)
	require.Equal(t, "ask-100", summary.BestAsk.OfferID)
}

func TestEngine_AskMatchesBestBidAtRestingPrice(t *testing.T) {
	t.Parallel()

	engine, _ := newTestEngine(t)
	now := time.Now().UTC()

	_, err := engine.PlaceBid(testBid("bid-95", "buyer1", 9500, now))
	require.NoError(t, err)
	_, err = engine.PlaceBid(testBid("bid-110", "buyer2", 11000, now.Add(time.Second)))
	require.NoError(t, err)

	res, err := engine.PlaceAsk(testAsk("ask-100", "seller", 10000, now.Add(2*time.Second)))
	require.NoError(t, err)
	require.Equal(t, OutcomeSettled, res.Outcome)
	require.Equal(t, "bid-110", res.Order.BidID, "highest bid matches")
	require.Equal(t, int64(11000), res.Order.Price, "resting bid sets the price")
}

func TestEngine_NoCrossRests(t *testing.T) {
	t.Parallel()

	engine, repo := newTestEngine(t)
	now := time.Now().UTC()

	_, err := engine.PlaceAsk(testAsk("ask-100", "seller", 10000, now))
	require.NoError(t, err)

	res, err := engine.PlaceBid(testBid("bid-95", "buyer", 9500, now.Add(time.Second)))
	require.NoError(t, err)
	require.Equal(t, OutcomeResting, res.Outcome)
	require.Nil(t, res.Order)

	bid, err := repo.GetBid("bid-95")
	require.NoError(t, err)
	require.Equal(t, model.OfferOpen, bid.Status)
}

func TestEngine_TimePriorityAtSamePrice(t *testing.T) {
	t.Parallel()

	engine, _ := newTestEngine(t)
	now := time.Now().UTC()

	_, err := engine.PlaceAsk(testAsk("ask-early", "seller1", 9000, now))
	require.NoError(t, err)
	_, err = engine.PlaceAsk(testAsk("ask-late", "seller2", 9000, now.Add(time.Minute)))
	require.NoError(t, err)

	res, err := engine.PlaceBid(testBid("bid-1", "buyer", 9000, now.Add(2*time.Minute)))
	require.NoError(t, err)
	require.Equal(t, OutcomeSettled, res.Outcome)
	require.Equal(t, "ask-early", res.Order.AskID, "earlier ask at the same price wins")
}

func TestEngine_DuplicateOpenBidConflicts(t *testing.T) {
	t.Parallel()

	engine, _ := newTestEngine(t)
	now := time.Now().UTC()

	_, err := engine.PlaceBid(testBid("bid-1", "buyer", 9000, now))
	require.NoError(t, err)

	_, err = engine.PlaceBid(testBid("bid-2", "buyer", 9100, now.Add(time.Second)))
	require.ErrorIs(t, err, exchangeerrors.ErrDuplicateOffer)
}

func TestEngine_UnknownMarketRejected(t *testing.T) {
	t.Parallel()

	engine, _ := newTestEngine(t)
	now := time.Now().UTC()

	bid := testBid("bid-1", "buyer", 9000, now)
	bid.ProductID = "prodX"

	_, err := engine.PlaceBid(bid)
	require.ErrorIs(t, err, exchangeerrors.ErrMarketNotFound)
}

func TestEngine_ExpiredAskNeverMatches(t *testing.T) {
	t.Parallel()

	engine, repo := newTestEngine(t)
	now := time.Now().UTC()

	// Rest an ask, then move the engine clock past its validUntil.
	ask := testAsk("ask-90", "seller", 9000, now)
	ask.ValidUntil = now.Add(time.Hour)
	_, err := engine.PlaceAsk(ask)
	require.NoError(t, err)

	engine.now = func() time.Time { return now.Add(2 * time.Hour) }

	res, err := engine.PlaceBid(testBid("bid-95", "buyer", 9500, now.Add(2*time.Hour)))
	require.NoError(t, err)
	require.Equal(t, OutcomeResting, res.Outcome, "an expired ask must not match")

	storedAsk, err := repo.GetAsk("ask-90")
	require.NoError(t, err)
	require.Equal(t, model.OfferOpen, storedAsk.Status, "status change is the sweeper's job")
}

func TestEngine_CancelledAskNeverMatches(t *testing.T) {
	t.Parallel()

	engine, _ := newTestEngine(t)
	now := time.Now().UTC()

	ask := testAsk("ask-90", "seller", 9000, now)
	_, err := engine.PlaceAsk(ask)
	require.NoError(t, err)
	require.NoError(t, engine.CancelAsk(ask))

	// Cancelling again conflicts.
	require.ErrorIs(t, engine.CancelAsk(ask), exchangeerrors.ErrStatusConflict)

	res, err := engine.PlaceBid(testBid("bid-95", "buyer", 9500, now.Add(time.Second)))
	require.NoError(t, err)
	require.Equal(t, OutcomeResting, res.Outcome)
}

// A failing settler must leave both offers open: the resting ask stays in the
// book and the incoming bid rests beside it.
func TestEngine_SettlementFailureLeavesBothOpen(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	repo.AddProduct(model.Product{ProductID: "prod1", Name: "Test Shoe", Brand: "TestBrand"})
	repo.AddVariant(model.SizeVariant{SizeVariantID: "var1", ProductID: "prod1", Label: "US 10"})
	engine := NewEngine(repo, failingSettler{})

	now := time.Now().UTC()
	_, err := engine.PlaceAsk(testAsk("ask-90", "seller", 9000, now))
	require.NoError(t, err)

	res, err := engine.PlaceBid(testBid("bid-95", "buyer", 9500, now.Add(time.Second)))
	require.ErrorIs(t, err, exchangeerrors.ErrSettlementFailed)
	require.Equal(t, OutcomeResting, res.Outcome)

	bid, err := repo.GetBid("bid-95")
	require.NoError(t, err)
	require.Equal(t, model.OfferOpen, bid.Status)
	ask, err := repo.GetAsk("ask-90")
	require.NoError(t, err)
	require.Equal(t, model.OfferOpen, ask.Status)

	summary := engine.Summary(model.MarketKey{ProductID: "prod1", SizeVariantID: "var1"})
	require.Equal(t, 1, summary.BidDepth)
	require.Equal(t, 1, summary.AskDepth)
}

type failingSettler struct{}

func (failingSettler) Settle(model.Bid, model.Ask, int64) (model.Order, model.Transaction, error) {
	return model.Order{}, model.Transaction{}, fmt.Errorf("boom: %w", exchangeerrors.ErrSettlementFailed)
}

// Across an arbitrary insert sequence every matched offer belongs to exactly
// one order.
func TestEngine_OneToOneMatchingInvariant(t *testing.T) {
	t.Parallel()

	engine, repo := newTestEngine(t)
	now := time.Now().UTC()

	var orders []model.Order
	prices := []int64{10000, 9000, 9500, 8500, 9800, 8700, 9200, 9100}
	for i, price := range prices {
		ts := now.Add(time.Duration(i) * time.Second)
		if i%2 == 0 {
			res, err := engine.PlaceAsk(testAsk(fmt.Sprintf("ask-%d", i), fmt.Sprintf("seller-%d", i), price, ts))
			require.NoError(t, err)
			if res.Outcome == OutcomeSettled {
				orders = append(orders, *res.Order)
			}
		} else {
			res, err := engine.PlaceBid(testBid(fmt.Sprintf("bid-%d", i), fmt.Sprintf("buyer-%d", i), price, ts))
			require.NoError(t, err)
			if res.Outcome == OutcomeSettled {
				orders = append(orders, *res.Order)
			}
		}
	}

	seenBids := make(map[string]bool)
	seenAsks := make(map[string]bool)
	for _, order := range orders {
		require.False(t, seenBids[order.BidID], "bid %s settled twice", order.BidID)
		require.False(t, seenAsks[order.AskID], "ask %s settled twice", order.AskID)
		seenBids[order.BidID] = true
		seenAsks[order.AskID] = true

		bid, err := repo.GetBid(order.BidID)
		require.NoError(t, err)
		require.Equal(t, model.OfferMatched, bid.Status)
		ask, err := repo.GetAsk(order.AskID)
		require.NoError(t, err)
		require.Equal(t, model.OfferMatched, ask.Status)
		require.GreaterOrEqual(t, bid.Price, order.Price, "order price never exceeds the bid")
		require.LessOrEqual(t, ask.Price, order.Price, "order price never undercuts the ask")
	}
}

func TestEngine_MarketsAreIndependent(t *testing.T) {
	t.Parallel()

	engine, repo := newTestEngine(t)
	repo.AddVariant(model.SizeVariant{SizeVariantID: "var2", ProductID: "prod1", Label: "US 11"})
	now := time.Now().UTC()

	ask := testAsk("ask-90", "seller", 9000, now)
	ask.SizeVariantID = "var2"
	_, err := engine.PlaceAsk(ask)
	require.NoError(t, err)

	// A crossing bid in a different size variant must not match.
	res, err := engine.PlaceBid(testBid("bid-95", "buyer", 9500, now.Add(time.Second)))
	require.NoError(t, err)
	require.Equal(t, OutcomeResting, res.Outcome)
}
