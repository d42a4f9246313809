package api

// Service accessors group Client methods by resource.
// Each service embeds *Client; constructing one is free.

type AnimeService struct{ *Client }

type MangaService struct{ *Client }

type PersonService struct{ *Client }

type CharacterService struct{ *Client }

type SearchService struct{ *Client }

type SeasonService struct{ *Client }

type ScheduleService struct{ *Client }

type TopService struct{ *Client }

type GenreService struct{ *Client }

type ProducerService struct{ *Client }

type MagazineService struct{ *Client }

type UserService struct{ *Client }

type ClubService struct{ *Client }

type MetaService struct{ *Client }

func (c *Client) Anime() AnimeService {
	return AnimeService{c}
}

func (c *Client) Manga() MangaService {
	return MangaService{c}
}

func (c *Client) Person() PersonService {
	return PersonService{c}
}

func (c *Client) Character() CharacterService {
	return CharacterService{c}
}

func (c *Client) Search() SearchService {
	return SearchService{c}
}

func (c *Client) Season() SeasonService {
	return SeasonService{c}
}

func (c *Client) Schedule() ScheduleService {
	return ScheduleService{c}
}

func (c *Client) Top() TopService {
	return TopService{c}
}

func (c *Client) Genre() GenreService {
	return GenreService{c}
}

func (c *Client) Producer() ProducerService {
	return ProducerService{c}
}

func (c *Client) Magazine() MagazineService {
	return MagazineService{c}
}

func (c *Client) User() UserService {
	return UserService{c}
}

func (c *Client) Club() ClubService {
	return ClubService{c}
}

func (c *Client) Meta() MetaService {
	return MetaService{c}
}
