package domain

import "time"

// Verse is a scripture passage shown on the daily Word page.
type Verse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// verseEpoch is day zero of the daily rotation.
var verseEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

var dailyVerses = []Verse{
	{Reference: "Psalm 46:10", Text: "Be still, and know that I am God."},
	{Reference: "Proverbs 3:5", Text: "Trust in the LORD with all thine heart; and lean not unto thine own understanding."},
	{Reference: "Isaiah 40:31", Text: "But they that wait upon the LORD shall renew their strength; they shall mount up with wings as eagles."},
	{Reference: "Philippians 4:13", Text: "I can do all things through Christ which strengtheneth me."},
	{Reference: "Joshua 1:9", Text: "Be strong and of a good courage; be not afraid, neither be thou dismayed: for the LORD thy God is with thee whithersoever thou goest."},
	{Reference: "Psalm 23:1", Text: "The LORD is my shepherd; I shall not want."},
	{Reference: "Matthew 11:28", Text: "Come unto me, all ye that labour and are heavy laden, and I will give you rest."},
	{Reference: "Romans 8:28", Text: "And we know that all things work together for good to them that love God."},
	{Reference: "Jeremiah 29:11", Text: "For I know the thoughts that I think toward you, saith the LORD, thoughts of peace, and not of evil, to give you an expected end."},
	{Reference: "Lamentations 3:22-23", Text: "His compassions fail not. They are new every morning: great is thy faithfulness."},
	{Reference: "Psalm 118:24", Text: "This is the day which the LORD hath made; we will rejoice and be glad in it."},
	{Reference: "John 14:27", Text: "Peace I leave with you, my peace I give unto you. Let not your heart be troubled, neither let it be afraid."},
	{Reference: "1 Peter 5:7", Text: "Casting all your care upon him; for he careth for you."},
	{Reference: "Hebrews 11:1", Text: "Now faith is the substance of things hoped for, the evidence of things not seen."},
	{Reference: "Psalm 119:105", Text: "Thy word is a lamp unto my feet, and a light unto my path."},
	{Reference: "James 5:16", Text: "The effectual fervent prayer of a righteous man availeth much."},
	{Reference: "1 Thessalonians 5:17", Text: "Pray without ceasing."},
	{Reference: "Galatians 6:2", Text: "Bear ye one another's burdens, and so fulfil the law of Christ."},
	{Reference: "Micah 6:8", Text: "What doth the LORD require of thee, but to do justly, and to love mercy, and to walk humbly with thy God?"},
	{Reference: "Psalm 34:18", Text: "The LORD is nigh unto them that are of a broken heart."},
	{Reference: "2 Corinthians 5:7", Text: "For we walk by faith, not by sight."},
	{Reference: "Colossians 3:23", Text: "And whatsoever ye do, do it heartily, as to the Lord, and not unto men."},
	{Reference: "Isaiah 41:10", Text: "Fear thou not; for I am with thee: be not dismayed; for I am thy God: I will strengthen thee."},
	{Reference: "Psalm 27:1", Text: "The LORD is my light and my salvation; whom shall I fear?"},
	{Reference: "Romans 12:12", Text: "Rejoicing in hope; patient in tribulation; continuing instant in prayer."},
	{Reference: "Ephesians 4:32", Text: "And be ye kind one to another, tenderhearted, forgiving one another."},
	{Reference: "Matthew 5:16", Text: "Let your light so shine before men, that they may see your good works."},
	{Reference: "Psalm 121:1-2", Text: "I will lift up mine eyes unto the hills, from whence cometh my help. My help cometh from the LORD."},
	{Reference: "1 John 4:19", Text: "We love him, because he first loved us."},
	{Reference: "Nahum 1:7", Text: "The LORD is good, a strong hold in the day of trouble."},
}

// DailyVerses returns the rotation in order.
func DailyVerses() []Verse {
	return append([]Verse(nil), dailyVerses...)
}

// SelectVerseForDate picks the verse for the day containing t. The same day
// always yields the same verse, and the rotation repeats every len(DailyVerses()) days.
// Dates before the rotation epoch are handled by wrapping around.
func SelectVerseForDate(t time.Time) Verse {
	n := int64(len(dailyVerses))
	idx := ((daysSinceEpoch(t) % n) + n) % n
	return dailyVerses[idx]
}

func daysSinceEpoch(t time.Time) int64 {
	d := t.UTC().Sub(verseEpoch)
	days := int64(d / day)
	if d%day < 0 {
		days--
	}
	return days
}
