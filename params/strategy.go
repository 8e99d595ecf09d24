package params

// optimalStrategy computes the spec.md section 4.5 / section 9 optimal
// isogeny-tree traversal strategy for n leaves, given the relative
// cost of one scalar multiplication by the elementary degree (pCost)
// versus one elementary-degree isogeny evaluation (qCost). This is the
// Costello-Longa-Naehrig dynamic-programming construction: strategies
// are a property of (n, cost model) and, per spec.md, are meant to be
// computed once and treated as a static table afterward — which is
// exactly what the lazy, memoized parameter-set init in set.go does
// with this function's output.
func optimalStrategy(n int, pCost, qCost int) []int {
	if n <= 1 {
		return nil
	}

	strat := make([][]int, n+1)
	cost := make([]int, n+1)
	strat[1] = nil
	cost[1] = 0

	for i := 2; i <= n; i++ {
		bestCost := -1
		bestB := 1
		for b := 1; b < i; b++ {
			c := cost[i-b] + cost[b] + b*pCost + (i-b)*qCost
			if bestCost == -1 || c < bestCost {
				bestCost = c
				bestB = b
			}
		}
		s := make([]int, 0, i-1)
		s = append(s, bestB)
		s = append(s, strat[i-bestB]...)
		s = append(s, strat[bestB]...)
		strat[i] = s
		cost[i] = bestCost
	}

	return strat[n]
}
