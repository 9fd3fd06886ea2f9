package sat

// maxActivity is the ceiling at which variable and clause activities are
// rescaled back down, preserving relative order while avoiding float
// overflow.
const maxActivity = 1e100
