package agent

// Hyperparameters for the TD agent

// Initial value of every state: unknown, assume even odds
const Neutral = 0.5

// Name used when narrating moves
const Name = "TD agent"
