package sentiment

// entry is a lexicon word with its polarity and subjectivity.
type entry struct {
	polarity     float64 // -1..1
	subjectivity float64 // 0..1
}

// lexicon is a compact polarity/subjectivity word list in the spirit of
// the pattern lexicon: strongly evaluative words score high subjectivity,
// factual qualifiers score low.
var lexicon = map[string]entry{
	// positive
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"excellent":   {1.0, 1.0},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"strong":      {0.4, 0.5},
	"clear":       {0.4, 0.4},
	"clearly":     {0.4, 0.6},
	"effective":   {0.5, 0.6},
	"important":   {0.4, 0.7},
	"significant": {0.4, 0.6},
	"successful":  {0.6, 0.6},
	"success":     {0.6, 0.5},
	"valuable":    {0.5, 0.7},
	"useful":      {0.4, 0.5},
	"helpful":     {0.5, 0.6},
	"robust":      {0.4, 0.5},
	"novel":       {0.4, 0.6},
	"innovative":  {0.6, 0.7},
	"improve":     {0.4, 0.4},
	"improved":    {0.4, 0.4},
	"improvement": {0.4, 0.4},
	"benefit":     {0.5, 0.4},
	"beneficial":  {0.6, 0.6},
	"positive":    {0.5, 0.5},
	"promising":   {0.6, 0.7},
	"remarkable":  {0.7, 0.8},
	"impressive":  {0.8, 0.9},
	"interesting": {0.5, 0.6},
	"reliable":    {0.5, 0.5},
	"accurate":    {0.5, 0.5},
	"consistent":  {0.4, 0.4},
	"well":        {0.3, 0.3},
	"easy":        {0.4, 0.6},
	"simple":      {0.3, 0.4},
	"right":       {0.4, 0.5},
	"correct":     {0.4, 0.4},
	"true":        {0.3, 0.4},
	"perfect":     {1.0, 1.0},
	"amazing":     {0.8, 0.9},
	"wonderful":   {0.9, 0.9},
	"happy":       {0.8, 1.0},
	"love":        {0.6, 0.7},
	"like":        {0.3, 0.4},
	"enjoy":       {0.5, 0.6},

	// negative
	"bad":           {-0.7, 0.65},
	"worse":         {-0.6, 0.6},
	"worst":         {-1.0, 0.5},
	"poor":          {-0.6, 0.6},
	"weak":          {-0.4, 0.5},
	"unclear":       {-0.4, 0.5},
	"wrong":         {-0.5, 0.6},
	"incorrect":     {-0.5, 0.5},
	"false":         {-0.4, 0.4},
	"fail":          {-0.5, 0.4},
	"failed":        {-0.5, 0.4},
	"failure":       {-0.6, 0.5},
	"problem":       {-0.3, 0.3},
	"problematic":   {-0.5, 0.6},
	"difficult":     {-0.4, 0.6},
	"hard":          {-0.3, 0.5},
	"limited":       {-0.3, 0.4},
	"limitation":    {-0.3, 0.4},
	"insufficient":  {-0.5, 0.5},
	"inadequate":    {-0.6, 0.6},
	"inconsistent":  {-0.4, 0.5},
	"unreliable":    {-0.5, 0.6},
	"flawed":        {-0.6, 0.7},
	"flaw":          {-0.4, 0.5},
	"error":         {-0.4, 0.3},
	"errors":        {-0.4, 0.3},
	"negative":      {-0.5, 0.5},
	"harmful":       {-0.6, 0.6},
	"harm":          {-0.5, 0.4},
	"risk":          {-0.3, 0.4},
	"dangerous":     {-0.6, 0.7},
	"concern":       {-0.3, 0.4},
	"concerning":    {-0.4, 0.6},
	"doubt":         {-0.3, 0.5},
	"doubtful":      {-0.4, 0.7},
	"questionable":  {-0.4, 0.7},
	"trivial":       {-0.3, 0.5},
	"confusing":     {-0.5, 0.7},
	"misleading":    {-0.5, 0.7},
	"terrible":      {-0.9, 0.9},
	"awful":         {-0.9, 0.9},
	"hate":          {-0.7, 0.8},
	"sad":           {-0.6, 0.9},
	"unfortunately": {-0.4, 0.6},

	// hedges: near-neutral polarity, high subjectivity
	"perhaps":    {0, 0.8},
	"possibly":   {0, 0.8},
	"likely":     {0.1, 0.7},
	"unlikely":   {-0.1, 0.7},
	"arguably":   {0, 0.9},
	"apparently": {0, 0.8},
	"seemingly":  {0, 0.8},
	"probably":   {0, 0.7},
	"certainly":  {0.2, 0.8},
	"obviously":  {0.1, 0.9},
}

// intensifiers scale the polarity and subjectivity of the word that
// follows them.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"highly":     1.4,
	"especially": 1.3,
	"quite":      1.15,
	"rather":     1.1,
	"too":        1.1,
	"so":         1.2,
	"somewhat":   0.7,
	"slightly":   0.6,
	"fairly":     0.9,
	"barely":     0.5,
}

// negators flip the polarity of the word that follows them.
var negators = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"neither": {},
	"nor":     {},
	"without": {},
	"hardly":  {},
	"cannot":  {},
	"can't":   {},
	"don't":   {},
	"doesn't": {},
	"didn't":  {},
	"isn't":   {},
	"wasn't":  {},
	"aren't":  {},
	"won't":   {},
}
