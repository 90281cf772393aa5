package content

import (
	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// Decks is the static deck catalog in declaration order. Deck unlocks are
// appended to a player's unlocked list in this order, not in level order.
// Verse text is KJV (public domain).
var Decks = []models.Deck{
	{
		ID:          "foundation",
		Name:        "Foundation",
		Description: "Essential verses every believer should know",
		Icon:        "🏛️",
		Color:       "#6366f1",
		UnlockLevel: 1,
		Cards: []models.ScriptureCard{
			{ID: "foundation-1", DeckID: "foundation", Reference: "John 3:16", Hint: "God's love for the world", Text: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."},
			{ID: "foundation-2", DeckID: "foundation", Reference: "Genesis 1:1", Hint: "The very beginning", Text: "In the beginning God created the heaven and the earth."},
			{ID: "foundation-3", DeckID: "foundation", Reference: "Psalm 23:1", Hint: "The Lord as shepherd", Text: "The Lord is my shepherd; I shall not want."},
			{ID: "foundation-4", DeckID: "foundation", Reference: "Proverbs 3:5", Hint: "Where to place your trust", Text: "Trust in the Lord with all thine heart; and lean not unto thine own understanding."},
			{ID: "foundation-5", DeckID: "foundation", Reference: "Romans 3:23", Hint: "Who has sinned", Text: "For all have sinned, and come short of the glory of God."},
			{ID: "foundation-6", DeckID: "foundation", Reference: "Joshua 1:9", Hint: "Be strong and courageous", Text: "Have not I commanded thee? Be strong and of a good courage; be not afraid, neither be thou dismayed: for the Lord thy God is with thee whithersoever thou goest."},
		},
	},
	{
		ID:          "salvation",
		Name:        "Salvation",
		Description: "The gospel message of grace and redemption",
		Icon:        "✝️",
		Color:       "#f59e0b",
		UnlockLevel: 1,
		Cards: []models.ScriptureCard{
			{ID: "salvation-1", DeckID: "salvation", Reference: "Romans 6:23", Hint: "Wages versus gift", Text: "For the wages of sin is death; but the gift of God is eternal life through Jesus Christ our Lord."},
			{ID: "salvation-2", DeckID: "salvation", Reference: "Ephesians 2:8", Hint: "Saved by grace", Text: "For by grace are ye saved through faith; and that not of yourselves: it is the gift of God."},
			{ID: "salvation-3", DeckID: "salvation", Reference: "Acts 4:12", Hint: "No other name", Text: "Neither is there salvation in any other: for there is none other name under heaven given among men, whereby we must be saved."},
			{ID: "salvation-4", DeckID: "salvation", Reference: "Romans 10:9", Hint: "Confess and believe", Text: "That if thou shalt confess with thy mouth the Lord Jesus, and shalt believe in thine heart that God hath raised him from the dead, thou shalt be saved."},
			{ID: "salvation-5", DeckID: "salvation", Reference: "John 14:6", Hint: "The way, truth and life", Text: "Jesus saith unto him, I am the way, the truth, and the life: no man cometh unto the Father, but by me."},
		},
	},
	{
		ID:          "promises",
		Name:        "Promises",
		Description: "God's promises to hold onto",
		Icon:        "🌈",
		Color:       "#10b981",
		UnlockLevel: 2,
		Cards: []models.ScriptureCard{
			{ID: "promises-1", DeckID: "promises", Reference: "Jeremiah 29:11", Hint: "Plans of peace", Text: "For I know the thoughts that I think toward you, saith the Lord, thoughts of peace, and not of evil, to give you an expected end."},
			{ID: "promises-2", DeckID: "promises", Reference: "Philippians 4:19", Hint: "Every need supplied", Text: "But my God shall supply all your need according to his riches in glory by Christ Jesus."},
			{ID: "promises-3", DeckID: "promises", Reference: "Isaiah 41:10", Hint: "Fear thou not", Text: "Fear thou not; for I am with thee: be not dismayed; for I am thy God: I will strengthen thee; yea, I will help thee; yea, I will uphold thee with the right hand of my righteousness."},
			{ID: "promises-4", DeckID: "promises", Reference: "2 Corinthians 5:17", Hint: "A new creature", Text: "Therefore if any man be in Christ, he is a new creature: old things are passed away; behold, all things are become new."},
		},
	},
	{
		ID:          "wisdom",
		Name:        "Wisdom",
		Description: "Verses on wisdom and understanding",
		Icon:        "🦉",
		Color:       "#8b5cf6",
		UnlockLevel: 3,
		Cards: []models.ScriptureCard{
			{ID: "wisdom-1", DeckID: "wisdom", Reference: "Proverbs 1:7", Hint: "The beginning of knowledge", Text: "The fear of the Lord is the beginning of knowledge: but fools despise wisdom and instruction."},
			{ID: "wisdom-2", DeckID: "wisdom", Reference: "James 1:5", Hint: "Ask for wisdom", Text: "If any of you lack wisdom, let him ask of God, that giveth to all men liberally, and upbraideth not; and it shall be given him."},
			{ID: "wisdom-3", DeckID: "wisdom", Reference: "Proverbs 16:3", Hint: "Commit thy works", Text: "Commit thy works unto the Lord, and thy thoughts shall be established."},
			{ID: "wisdom-4", DeckID: "wisdom", Reference: "Psalm 119:105", Hint: "A lamp and a light", Text: "Thy word is a lamp unto my feet, and a light unto my path."},
		},
	},
	{
		ID:          "psalms",
		Name:        "Psalms",
		Description: "Songs of praise and refuge",
		Icon:        "🎵",
		Color:       "#ec4899",
		UnlockLevel: 4,
		Cards: []models.ScriptureCard{
			{ID: "psalms-1", DeckID: "psalms", Reference: "Psalm 46:1", Hint: "A very present help", Text: "God is our refuge and strength, a very present help in trouble."},
			{ID: "psalms-2", DeckID: "psalms", Reference: "Psalm 27:1", Hint: "Whom shall I fear", Text: "The Lord is my light and my salvation; whom shall I fear? the Lord is the strength of my life; of whom shall I be afraid?"},
			{ID: "psalms-3", DeckID: "psalms", Reference: "Psalm 139:14", Hint: "Fearfully and wonderfully", Text: "I will praise thee; for I am fearfully and wonderfully made: marvellous are thy works; and that my soul knoweth right well."},
			{ID: "psalms-4", DeckID: "psalms", Reference: "Psalm 118:24", Hint: "This is the day", Text: "This is the day which the Lord hath made; we will rejoice and be glad in it."},
		},
	},
	{
		ID:          "comfort",
		Name:        "Comfort",
		Description: "Verses for seasons of sorrow",
		Icon:        "🕊️",
		Color:       "#0ea5e9",
		UnlockLevel: 5,
		Cards: []models.ScriptureCard{
			{ID: "comfort-1", DeckID: "comfort", Reference: "Matthew 11:28", Hint: "Rest for the weary", Text: "Come unto me, all ye that labour and are heavy laden, and I will give you rest."},
			{ID: "comfort-2", DeckID: "comfort", Reference: "Psalm 34:18", Hint: "Near the brokenhearted", Text: "The Lord is nigh unto them that are of a broken heart; and saveth such as be of a contrite spirit."},
			{ID: "comfort-3", DeckID: "comfort", Reference: "Psalm 55:22", Hint: "Cast thy burden", Text: "Cast thy burden upon the Lord, and he shall sustain thee: he shall never suffer the righteous to be moved."},
			{ID: "comfort-4", DeckID: "comfort", Reference: "1 Peter 5:7", Hint: "He careth for you", Text: "Casting all your care upon him; for he careth for you."},
		},
	},
	{
		ID:          "faith",
		Name:        "Faith",
		Description: "The substance of things hoped for",
		Icon:        "⚓",
		Color:       "#f97316",
		UnlockLevel: 6,
		Cards: []models.ScriptureCard{
			{ID: "faith-1", DeckID: "faith", Reference: "Hebrews 11:1", Hint: "Faith defined", Text: "Now faith is the substance of things hoped for, the evidence of things not seen."},
			{ID: "faith-2", DeckID: "faith", Reference: "Hebrews 11:6", Hint: "Without faith", Text: "But without faith it is impossible to please him: for he that cometh to God must believe that he is, and that he is a rewarder of them that diligently seek him."},
			{ID: "faith-3", DeckID: "faith", Reference: "Mark 11:24", Hint: "Believe that ye receive", Text: "Therefore I say unto you, What things soever ye desire, when ye pray, believe that ye receive them, and ye shall have them."},
			{ID: "faith-4", DeckID: "faith", Reference: "2 Corinthians 5:7", Hint: "Not by sight", Text: "For we walk by faith, not by sight."},
		},
	},
	{
		ID:          "love",
		Name:        "Love",
		Description: "The greatest of these",
		Icon:        "❤️",
		Color:       "#ef4444",
		UnlockLevel: 7,
		Cards: []models.ScriptureCard{
			{ID: "love-1", DeckID: "love", Reference: "1 Corinthians 13:4", Hint: "Charity suffereth long", Text: "Charity suffereth long, and is kind; charity envieth not; charity vaunteth not itself, is not puffed up."},
			{ID: "love-2", DeckID: "love", Reference: "John 13:34", Hint: "A new commandment", Text: "A new commandment I give unto you, That ye love one another; as I have loved you, that ye also love one another."},
			{ID: "love-3", DeckID: "love", Reference: "1 John 4:19", Hint: "He first loved us", Text: "We love him, because he first loved us."},
			{ID: "love-4", DeckID: "love", Reference: "1 John 4:7", Hint: "Love is of God", Text: "Beloved, let us love one another: for love is of God; and every one that loveth is born of God, and knoweth God."},
		},
	},
	{
		ID:          "courage",
		Name:        "Courage",
		Description: "Strength for fearful moments",
		Icon:        "🦁",
		Color:       "#eab308",
		UnlockLevel: 8,
		Cards: []models.ScriptureCard{
			{ID: "courage-1", DeckID: "courage", Reference: "Deuteronomy 31:6", Hint: "He will not forsake thee", Text: "Be strong and of a good courage, fear not, nor be afraid of them: for the Lord thy God, he it is that doth go with thee; he will not fail thee, nor forsake thee."},
			{ID: "courage-2", DeckID: "courage", Reference: "Psalm 56:3", Hint: "When I am afraid", Text: "What time I am afraid, I will trust in thee."},
			{ID: "courage-3", DeckID: "courage", Reference: "Isaiah 40:31", Hint: "Wings as eagles", Text: "But they that wait upon the Lord shall renew their strength; they shall mount up with wings as eagles; they shall run, and not be weary; and they shall walk, and not faint."},
			{ID: "courage-4", DeckID: "courage", Reference: "Philippians 4:13", Hint: "Through Christ", Text: "I can do all things through Christ which strengtheneth me."},
		},
	},
	{
		ID:          "prayer",
		Name:        "Prayer",
		Description: "Drawing near in prayer",
		Icon:        "🙏",
		Color:       "#14b8a6",
		UnlockLevel: 9,
		Cards: []models.ScriptureCard{
			{ID: "prayer-1", DeckID: "prayer", Reference: "Philippians 4:6", Hint: "Be careful for nothing", Text: "Be careful for nothing; but in every thing by prayer and supplication with thanksgiving let your requests be made known unto God."},
			{ID: "prayer-2", DeckID: "prayer", Reference: "Matthew 6:6", Hint: "Pray in secret", Text: "But thou, when thou prayest, enter into thy closet, and when thou hast shut thy door, pray to thy Father which is in secret; and thy Father which seeth in secret shall reward thee openly."},
			{ID: "prayer-3", DeckID: "prayer", Reference: "James 5:16", Hint: "Effectual fervent prayer", Text: "Confess your faults one to another, and pray one for another, that ye may be healed. The effectual fervent prayer of a righteous man availeth much."},
			{ID: "prayer-4", DeckID: "prayer", Reference: "Psalm 145:18", Hint: "Nigh unto all that call", Text: "The Lord is nigh unto all them that call upon him, to all that call upon him in truth."},
		},
	},
	{
		ID:          "gospel",
		Name:        "Gospel",
		Description: "The good news to share",
		Icon:        "📖",
		Color:       "#84cc16",
		UnlockLevel: 10,
		Cards: []models.ScriptureCard{
			{ID: "gospel-1", DeckID: "gospel", Reference: "Mark 16:15", Hint: "Go into all the world", Text: "And he said unto them, Go ye into all the world, and preach the gospel to every creature."},
			{ID: "gospel-2", DeckID: "gospel", Reference: "Romans 1:16", Hint: "Not ashamed", Text: "For I am not ashamed of the gospel of Christ: for it is the power of God unto salvation to every one that believeth; to the Jew first, and also to the Greek."},
			{ID: "gospel-3", DeckID: "gospel", Reference: "1 Corinthians 15:3", Hint: "Christ died for our sins", Text: "For I delivered unto you first of all that which I also received, how that Christ died for our sins according to the scriptures."},
			{ID: "gospel-4", DeckID: "gospel", Reference: "Matthew 28:19", Hint: "Teach all nations", Text: "Go ye therefore, and teach all nations, baptizing them in the name of the Father, and of the Son, and of the Holy Ghost."},
		},
	},
	{
		ID:          "kingdom",
		Name:        "Kingdom",
		Description: "Seeking the kingdom first",
		Icon:        "👑",
		Color:       "#64748b",
		UnlockLevel: 12,
		Cards: []models.ScriptureCard{
			{ID: "kingdom-1", DeckID: "kingdom", Reference: "Matthew 6:33", Hint: "Seek ye first", Text: "But seek ye first the kingdom of God, and his righteousness; and all these things shall be added unto you."},
			{ID: "kingdom-2", DeckID: "kingdom", Reference: "Matthew 5:16", Hint: "Let your light shine", Text: "Let your light so shine before men, that they may see your good works, and glorify your Father which is in heaven."},
			{ID: "kingdom-3", DeckID: "kingdom", Reference: "Colossians 3:2", Hint: "Set your affection", Text: "Set your affection on things above, not on things on the earth."},
			{ID: "kingdom-4", DeckID: "kingdom", Reference: "Revelation 21:4", Hint: "No more tears", Text: "And God shall wipe away all tears from their eyes; and there shall be no more death, neither sorrow, nor crying, neither shall there be any more pain: for the former things are passed away."},
		},
	},
}

// DeckByID looks up a deck in the static catalog.
func DeckByID(id string) (*models.Deck, bool) {
	for i := range Decks {
		if Decks[i].ID == id {
			return &Decks[i], true
		}
	}
	return nil, false
}

// CardByID looks up a card within one deck.
func CardByID(deckID, cardID string) (*models.ScriptureCard, bool) {
	deck, ok := DeckByID(deckID)
	if !ok {
		return nil, false
	}
	for i := range deck.Cards {
		if deck.Cards[i].ID == cardID {
			return &deck.Cards[i], true
		}
	}
	return nil, false
}
