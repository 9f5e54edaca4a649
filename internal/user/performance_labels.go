package user

// MetricLabel returns the default display label for a metric, specialized per
// sport where the metric reads differently (a "decisive action" is a goal in
// football but an ace in volleyball). Labels are French, matching the client.
func MetricLabel(key MetricKey, sport Sport) string {
	switch key {
	case MetricAvailabilityMinutes:
		return "Minutes jouées 28j"
	case MetricMatchesPlayed:
		return "Matchs/épreuves 28j"
	case MetricTrainingVolume:
		return "Volume entraînement (min/sem)"
	case MetricDecisiveActions:
		return decisiveActionsLabel(sport)
	case MetricMaxSpeedKmh:
		return maxSpeedLabel(sport)
	case MetricPenaltiesEvents:
		return penaltiesLabel(sport)
	}
	return string(key)
}

func decisiveActionsLabel(sport Sport) string {
	switch sport {
	case SportFootball:
		return "Buts + passes décisives 28j"
	case SportRugby:
		return "Essais + passes décisives 28j"
	case SportHockey:
		return "Buts + assists 28j"
	case SportBasketball:
		return "Points + assists 28j"
	case SportHandball:
		return "Buts + passes 28j"
	case SportVolleyball:
		return "Aces + blocks 28j"
	case SportTennis, SportBadminton:
		return "Victoires/sets gagnants 28j"
	case SportTableTennis:
		return "Victoires/manches gagnées 28j"
	case SportSwimming:
		return "Records/chrono améliorés 28j"
	case SportAthletics:
		return "PR/records perso 28j"
	case SportCycling:
		return "PR/segments gagnés 28j"
	case SportMartialArts:
		return "Victoires 28j"
	case SportBaseball:
		return "Hits + RBIs 28j"
	case SportGolf:
		return "Scores sous le par 28j"
	}
	return "Actions décisives 28j"
}

func maxSpeedLabel(sport Sport) string {
	switch sport {
	case SportFootball, SportRugby, SportHockey, SportBasketball, SportHandball:
		return "Vitesse max (km/h)"
	case SportVolleyball:
		return "Perf clé (ex: détente/serv.)"
	case SportTennis:
		return "Perf clé (ex: vitesse service)"
	case SportBadminton:
		return "Perf clé (ex: smash speed)"
	case SportTableTennis:
		return "Perf clé (ex: efficacité)"
	case SportSwimming, SportAthletics:
		return "Perf clé (ex: meilleur chrono)"
	case SportCycling:
		return "Perf clé (ex: meilleure puissance)"
	case SportMartialArts:
		return "Perf clé (ex: ippon/KO rate)"
	case SportBaseball:
		return "Perf clé (ex: bat speed)"
	case SportGolf:
		return "Perf clé (ex: club speed)"
	}
	return "Vitesse max / Perf clé"
}

func penaltiesLabel(sport Sport) string {
	switch sport {
	case SportFootball:
		return "Cartons/fautes 28j"
	case SportRugby:
		return "Pénalités/fautes 28j"
	case SportHockey:
		return "Pénalités/expulsions 28j"
	case SportBasketball:
		return "Fautes/balles perdues 28j"
	case SportHandball:
		return "Exclusions/fautes 28j"
	case SportVolleyball, SportTableTennis:
		return "Fautes directes 28j"
	case SportTennis:
		return "Pénalités/double fautes 28j"
	case SportBadminton:
		return "Fautes de service 28j"
	case SportSwimming:
		return "Disqualifications 28j"
	case SportAthletics:
		return "Faux départs/DSQ 28j"
	case SportCycling:
		return "Pénalités/DSQ 28j"
	case SportMartialArts:
		return "Pénalités/shido 28j"
	case SportBaseball:
		return "Erreurs (E) 28j"
	case SportGolf:
		return "Pénalités 28j"
	}
	return "Pénalités/fautes 28j"
}
