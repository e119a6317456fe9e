package fighter

// CardPosition is the slot a fighter occupies on an event's fight card.
type CardPosition string

const (
	CardPositionMainEvent    CardPosition = "MAIN_EVENT"
	CardPositionCoMain       CardPosition = "CO_MAIN"
	CardPositionMainCard     CardPosition = "MAIN_CARD"
	CardPositionPrelims      CardPosition = "PRELIMS"
	CardPositionEarlyPrelims CardPosition = "EARLY_PRELIMS"
)

var AllCardPositions = map[CardPosition]struct{}{
	CardPositionMainEvent:    {},
	CardPositionCoMain:       {},
	CardPositionMainCard:     {},
	CardPositionPrelims:      {},
	CardPositionEarlyPrelims: {},
}

// RankCategory buckets a divisional ranking for pricing.
type RankCategory string

const (
	RankCategoryChampion RankCategory = "CHAMPION"
	RankCategoryTop3     RankCategory = "RANK_1_3"
	RankCategoryTop5     RankCategory = "RANK_4_5"
	RankCategoryTop10    RankCategory = "RANK_6_10"
	RankCategoryTop15    RankCategory = "RANK_11_15"
	RankCategoryUnranked RankCategory = "UNRANKED"
)

// CategorizeRank maps a divisional ranking to its pricing bucket. Rankings
// outside 1..15 degrade to unranked.
func CategorizeRank(isChampion bool, ranking int) RankCategory {
	if isChampion {
		return RankCategoryChampion
	}

	switch {
	case ranking >= 1 && ranking <= 3:
		return RankCategoryTop3
	case ranking >= 4 && ranking <= 5:
		return RankCategoryTop5
	case ranking >= 6 && ranking <= 10:
		return RankCategoryTop10
	case ranking >= 11 && ranking <= 15:
		return RankCategoryTop15
	default:
		return RankCategoryUnranked
	}
}

type pricePair struct {
	favorite int64
	underdog int64
}

var priceTable = map[CardPosition]map[RankCategory]pricePair{
	CardPositionMainEvent: {
		RankCategoryChampion: {favorite: 45, underdog: 40},
		RankCategoryTop3:     {favorite: 42, underdog: 38},
		RankCategoryTop5:     {favorite: 40, underdog: 35},
		RankCategoryTop10:    {favorite: 38, underdog: 33},
		RankCategoryTop15:    {favorite: 35, underdog: 30},
		RankCategoryUnranked: {favorite: 32, underdog: 28},
	},
	CardPositionCoMain: {
		RankCategoryChampion: {favorite: 40, underdog: 36},
		RankCategoryTop3:     {favorite: 38, underdog: 34},
		RankCategoryTop5:     {favorite: 36, underdog: 32},
		RankCategoryTop10:    {favorite: 34, underdog: 30},
		RankCategoryTop15:    {favorite: 32, underdog: 28},
		RankCategoryUnranked: {favorite: 30, underdog: 26},
	},
	CardPositionMainCard: {
		RankCategoryChampion: {favorite: 36, underdog: 32},
		RankCategoryTop3:     {favorite: 34, underdog: 30},
		RankCategoryTop5:     {favorite: 32, underdog: 28},
		RankCategoryTop10:    {favorite: 30, underdog: 26},
		RankCategoryTop15:    {favorite: 28, underdog: 24},
		RankCategoryUnranked: {favorite: 26, underdog: 22},
	},
	CardPositionPrelims: {
		RankCategoryChampion: {favorite: 30, underdog: 26},
		RankCategoryTop3:     {favorite: 28, underdog: 24},
		RankCategoryTop5:     {favorite: 26, underdog: 22},
		RankCategoryTop10:    {favorite: 24, underdog: 20},
		RankCategoryTop15:    {favorite: 22, underdog: 18},
		RankCategoryUnranked: {favorite: 20, underdog: 16},
	},
	CardPositionEarlyPrelims: {
		RankCategoryChampion: {favorite: 26, underdog: 22},
		RankCategoryTop3:     {favorite: 24, underdog: 20},
		RankCategoryTop5:     {favorite: 22, underdog: 18},
		RankCategoryTop10:    {favorite: 20, underdog: 16},
		RankCategoryTop15:    {favorite: 18, underdog: 14},
		RankCategoryUnranked: {favorite: 16, underdog: 12},
	},
}

// LookupPrice resolves the table price for a card slot, rank bucket and
// favorite flag. Unknown card positions price as early prelims.
func LookupPrice(position CardPosition, rank RankCategory, isFavorite bool) int64 {
	byRank, ok := priceTable[position]
	if !ok {
		byRank = priceTable[CardPositionEarlyPrelims]
	}
	pair, ok := byRank[rank]
	if !ok {
		pair = byRank[RankCategoryUnranked]
	}

	if isFavorite {
		return pair.favorite
	}
	return pair.underdog
}

// PriceOf returns the fighter's effective price. An explicit price always
// wins over the table.
func PriceOf(f Fighter) int64 {
	if f.Price > 0 {
		return f.Price
	}
	return LookupPrice(f.CardPosition, CategorizeRank(f.IsChampion, f.Ranking), f.IsFavorite)
}
